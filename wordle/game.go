package wordle

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

// MaxTurns is the number of guesses allowed in a game.
const MaxTurns = 6

// State is a step of the game loop.
type State int

const (
	AwaitingGuess State = iota
	Scoring
	Filtering
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case AwaitingGuess:
		return "awaiting guess"
	case Scoring:
		return "scoring"
	case Filtering:
		return "filtering"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no more guesses are accepted.
func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Rand draws the secret word. *math/rand.Rand and *frand.RNG satisfy it.
type Rand interface {
	Intn(n int) int
}

type gameConfig struct {
	length   int
	secret   string
	rng      Rand
	selector Selector
	opening  string
}

// Option configures NewGame.
type Option func(*gameConfig)

// WithLength plays with words of length n instead of the length of the first
// listed word.
func WithLength(n int) Option {
	return func(c *gameConfig) { c.length = n }
}

// WithSecret fixes the secret word instead of drawing one. A secret missing
// from the word list is accepted, the candidates can then run out.
func WithSecret(secret string) Option {
	return func(c *gameConfig) { c.secret = secret }
}

// WithRand sets the random source used to draw the secret.
func WithRand(r Rand) Option {
	return func(c *gameConfig) { c.rng = r }
}

// WithSelector sets the policy used by Suggest.
func WithSelector(s Selector) Option {
	return func(c *gameConfig) { c.selector = s }
}

// WithOpening makes Suggest return opening on the first turn instead of
// computing a guess.
func WithOpening(opening string) Option {
	return func(c *gameConfig) { c.opening = opening }
}

// Game is the state of one game. A finished game can not be restarted, create
// a new one instead. A Game is not safe for concurrent use.
type Game struct {
	part     *Partition
	secret   Word
	history  []GuessRecord
	pool     Pool
	turns    int
	state    State
	reason   error
	selector Selector
	opening  Word
}

// NewGame starts a game with a secret drawn from list.
func NewGame(list *WordList, opts ...Option) (*Game, error) {
	if list == nil || list.Len() == 0 {
		return nil, fmt.Errorf("%w: no words", ErrInvalidWordList)
	}
	cfg := gameConfig{selector: DefaultSelector}
	for _, opt := range opts {
		opt(&cfg)
	}

	var secret Word
	if cfg.secret != "" {
		w, err := NormalizeWord(cfg.secret)
		if err != nil {
			return nil, fmt.Errorf("secret: %w", err)
		}
		secret = w
		if cfg.length == 0 {
			cfg.length = secret.Len()
		} else if cfg.length != secret.Len() {
			return nil, fmt.Errorf("%w: secret %q does not have %d letters", ErrLengthMismatch, secret, cfg.length)
		}
	}
	if cfg.length == 0 {
		cfg.length = list.DefaultLength()
	}
	part, err := list.Partition(cfg.length)
	if err != nil {
		return nil, err
	}

	ret := &Game{
		part:     part,
		pool:     part.All(),
		turns:    MaxTurns,
		state:    AwaitingGuess,
		selector: cfg.selector,
	}
	if cfg.opening != "" {
		opening, err := NormalizeWord(cfg.opening)
		if err != nil {
			return nil, fmt.Errorf("opening: %w", err)
		}
		if opening.Len() != cfg.length {
			return nil, fmt.Errorf("%w: opening %q does not have %d letters", ErrLengthMismatch, opening, cfg.length)
		}
		ret.opening = opening
	}
	if secret == "" {
		rng := cfg.rng
		if rng == nil {
			rng = frand.New()
		}
		secret = part.Word(rng.Intn(part.Len()))
	}
	ret.secret = secret
	return ret, nil
}

// Submit scores guess against the secret and narrows the candidates.
// A guess of the wrong length returns ErrLengthMismatch and does not use a
// turn. After a terminal state every call returns ErrGameOver.
func (g *Game) Submit(guess string) (Pattern, error) {
	if g.state.Terminal() {
		return nil, ErrGameOver
	}
	w, err := NormalizeWord(guess)
	if err != nil {
		return nil, err
	}

	g.state = Scoring
	pattern, err := Score(g.secret, w)
	if err != nil {
		g.state = AwaitingGuess
		return nil, err
	}
	g.history = append(g.history, GuessRecord{Guess: w, Pattern: pattern})
	g.turns--
	if pattern.Solved() {
		g.state = Won
		return pattern, nil
	}

	g.state = Filtering
	pool, err := g.part.Index().Filter(g.pool, w, pattern)
	if err != nil {
		// lengths were checked by Score
		g.lose(err)
		return pattern, err
	}
	g.pool = pool
	switch {
	case g.pool.Len() == 0:
		g.lose(ErrEmptyPool)
	case g.turns == 0:
		g.lose(nil)
	default:
		g.state = AwaitingGuess
	}
	return pattern, nil
}

// Suggest returns the next guess for the automated player: the opening word
// on the first turn when one is configured, the selector's choice otherwise.
func (g *Game) Suggest() (Word, error) {
	if g.state.Terminal() {
		return "", ErrGameOver
	}
	if len(g.history) == 0 && g.opening != "" {
		return g.opening, nil
	}
	return g.selector.Select(g.pool)
}

// AutoPlay lets the automated player finish the game and returns the number
// of turns used. Running out of candidates loses the game.
func (g *Game) AutoPlay() (int, error) {
	for !g.state.Terminal() {
		guess, err := g.Suggest()
		if errors.Is(err, ErrEmptyPool) {
			g.lose(err)
			break
		}
		if err != nil {
			return g.TurnsUsed(), err
		}
		if _, err := g.Submit(string(guess)); err != nil {
			return g.TurnsUsed(), err
		}
	}
	return g.TurnsUsed(), nil
}

func (g *Game) lose(reason error) {
	g.state = Lost
	g.reason = reason
}

func (g *Game) State() State {
	return g.state
}

// LossReason is ErrEmptyPool when the game was lost because no candidate was
// left, nil otherwise.
func (g *Game) LossReason() error {
	return g.reason
}

// History returns the guesses so far in order.
func (g *Game) History() []GuessRecord {
	return append([]GuessRecord(nil), g.history...)
}

// Pool returns the words still consistent with every guess.
func (g *Game) Pool() Pool {
	return g.pool
}

func (g *Game) TurnsRemaining() int {
	return g.turns
}

func (g *Game) TurnsUsed() int {
	return MaxTurns - g.turns
}

// WordLength is the number of letters of the secret.
func (g *Game) WordLength() int {
	return g.part.length
}

// Secret reveals the secret word.
func (g *Game) Secret() Word {
	return g.secret
}
