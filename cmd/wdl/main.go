package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/powellquiring/wordlebot/wordle"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

// playInteractive reads guesses from stdin until the game ends. "?" asks the
// automated player for a suggestion.
func playInteractive(globalConfig GlobalConfiguration, secret string) error {
	opts := globalConfig.gameOptions()
	if secret != "" {
		opts = append(opts, wordle.WithSecret(secret))
	}
	game, err := wordle.NewGame(globalConfig.words, opts...)
	if err != nil {
		return err
	}
	board := textRenderer{w: os.Stdout, length: game.WordLength()}
	fmt.Printf("guess the %d letter word, ? for a hint\n", game.WordLength())

	in := bufio.NewScanner(os.Stdin)
	for !game.State().Terminal() {
		fmt.Printf("guess %d: ", game.TurnsUsed()+1)
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "?":
			hint, err := game.Suggest()
			if err != nil {
				return err
			}
			fmt.Println("try:", hint, "candidates:", game.Pool().Len())
			continue
		}
		if _, err := game.Submit(line); err != nil {
			fmt.Println(err)
			_ = board.Render(game.History(), line)
			continue
		}
		if err := board.Render(game.History(), ""); err != nil {
			return err
		}
	}
	return announce(game)
}

func announce(game *wordle.Game) error {
	switch game.State() {
	case wordle.Won:
		fmt.Printf("won in %d: %s\n", game.TurnsUsed(), game.Secret())
	case wordle.Lost:
		if errors.Is(game.LossReason(), wordle.ErrEmptyPool) {
			fmt.Println("no words left, the secret is not in the word list:", game.Secret())
		} else {
			fmt.Println("lost, the word was:", game.Secret())
		}
	default:
		fmt.Println("game abandoned, the word was:", game.Secret())
	}
	return nil
}

// autoPlay lets the automated player solve one game and shows the board.
func autoPlay(globalConfig GlobalConfiguration, secret string) error {
	opts := globalConfig.gameOptions()
	if secret != "" {
		opts = append(opts, wordle.WithSecret(secret))
	}
	if globalConfig.opening != "" {
		opts = append(opts, wordle.WithOpening(globalConfig.opening))
	}
	game, err := wordle.NewGame(globalConfig.words, opts...)
	if err != nil {
		return err
	}
	turns, err := game.AutoPlay()
	if err != nil {
		return err
	}
	log.Debug().Str("secret", string(game.Secret())).Int("turns", turns).Stringer("state", game.State()).Msg("auto play")
	if err := (textRenderer{w: os.Stdout, length: game.WordLength()}).Render(game.History(), ""); err != nil {
		return err
	}
	return announce(game)
}

// solve with guess/answer pairs provided
func solve(globalConfig GlobalConfiguration, answers []string) error {
	records, err := wordle.ParseRecords(answers)
	if err != nil {
		return err
	}
	for _, record := range records {
		if !globalConfig.words.Contains(record.Guess) {
			log.Warn().Str("guess", string(record.Guess)).Msg("guess not in word list")
		}
	}
	nextGuess, possibleWords, err := wordle.Solve(globalConfig.words, globalConfig.selector, records)
	if err != nil {
		return err
	}
	fmt.Print(nextGuess, ":")
	for _, word := range possibleWords.All {
		fmt.Print(" ", word)
	}
	fmt.Println()
	return nil
}

// first ranks the words by selector score against the full list
func first(globalConfig GlobalConfiguration, top int) error {
	length := globalConfig.length
	if length == 0 {
		length = globalConfig.words.DefaultLength()
	}
	part, err := globalConfig.words.Partition(length)
	if err != nil {
		return err
	}
	for i, item := range globalConfig.selector.Rank(part.All()) {
		if top > 0 && i >= top {
			break
		}
		fmt.Println(item.Word, item.Score)
	}
	return nil
}

func batch(ctx context.Context, globalConfig GlobalConfiguration, openings []string, sims, workers, seed, top int, chart bool) error {
	total := len(openings)
	if total == 0 {
		total = globalConfig.words.Len()
	}
	var bar *progressbar.ProgressBar
	if globalConfig.progress {
		bar = progressbar.Default(int64(total), "openings")
	} else {
		bar = progressbar.DefaultSilent(int64(total))
	}
	results, err := wordle.RunBatch(ctx, globalConfig.words, wordle.BatchConfig{
		Openings:    openings,
		Simulations: sims,
		Concurrency: workers,
		Seed:        int64(seed),
		Selector:    &globalConfig.selector,
		Progress: func(wordle.BatchResult) {
			_ = bar.Add(1)
		},
	})
	_ = bar.Finish()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		log.Warn().Int("finished", len(results)).Int("openings", total).Msg("batch cancelled, partial results")
	}
	for i, result := range results {
		if top > 0 && i >= top {
			break
		}
		fmt.Printf("%s %.3f wins:%d losses:%d\n", result.Opening, result.MeanTurns, result.Wins, result.Losses)
	}
	if chart && len(results) > 0 {
		fmt.Println("---------------------", results[0].Opening)
		return barCharter{w: os.Stdout, width: 50}.Chart(results[0].WinsByTurns)
	}
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

func main() {
	// .env values become flag defaults through the WDL_* variables
	_ = godotenv.Load()

	wordsFile := ""
	count := 0
	length := 0
	penalty := 1
	opening := ""
	progress := false
	profile := false
	logLevel := "info"
	// command specific flags
	sims := 0
	workers := 0
	seed := 0
	top := 0
	firstTop := 0
	chart := false

	var globalConfig GlobalConfiguration
	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle engine and automated player",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "words",
				Aliases:     []string{"w"},
				Usage:       "word list file, one word per line, default is the embedded list",
				Sources:     cli.EnvVars("WDL_WORDS"),
				Destination: &wordsFile,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Sources:     cli.EnvVars("WDL_COUNT"),
				Destination: &count,
			},
			&cli.IntFlag{
				Name:        "length",
				Aliases:     []string{"l"},
				Usage:       "word length, 0 is the length of the first word",
				Sources:     cli.EnvVars("WDL_LENGTH"),
				Destination: &length,
			},
			&cli.IntFlag{
				Name:        "penalty",
				Value:       1,
				Usage:       "score penalty per repeated letter when choosing a guess",
				Sources:     cli.EnvVars("WDL_PENALTY"),
				Destination: &penalty,
			},
			&cli.StringFlag{
				Name:        "first",
				Aliases:     []string{"f"},
				Usage:       "opening word for the automated player, computed when empty",
				Sources:     cli.EnvVars("WDL_OPENING"),
				Destination: &opening,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("WDL_LOG_LEVEL"),
				Destination: &logLevel,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(logLevel); err != nil {
				return ctx, cli.Exit(err.Error(), 1)
			}
			var err error
			globalConfig, err = globalConfiguration(wordsFile, count, length, penalty, opening, progress)
			if err != nil {
				return ctx, cli.Exit(err.Error(), 1)
			}
			return log.Logger.WithContext(ctx), nil
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "play a game in the terminal, the secret is random unless given",
				ArgsUsage: "[secret]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return playInteractive(globalConfig, cmd.Args().First())
				},
			},
			{
				Name:      "bot",
				Usage:     "let the automated player solve a game, the secret is random unless given",
				ArgsUsage: "[secret]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return autoPlay(globalConfig, cmd.Args().First())
				},
			},
			{
				Name: "solve",
				Usage: `solve a game of wordle played elsewhere by entering pairs of [guess answer]...
				answers use r (absent), y (present elsewhere), g (exact), like: wdl solve raise rryrr hotly yryrr
				`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					}
					return solve(globalConfig, cmd.Args().Slice())
				},
			},
			{
				Name: "first",
				Usage: `first
				Sort first words by positional letter frequency score
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "top", Aliases: []string{"t"}, Usage: "print only the best n, 0 is all", Destination: &firstTop},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					return first(globalConfig, firstTop)
				},
			},
			{
				Name: "batch",
				Usage: `batch [opening]...
				Rank opening words by the mean number of turns the automated player needs,
				over random secrets. With no openings every word of the list is ranked.
				A lost game counts as 7 turns.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sims", Aliases: []string{"n"}, Value: 200, Usage: "games per opening word", Destination: &sims},
					&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "parallel workers, 0 is one per cpu", Destination: &workers},
					&cli.IntFlag{Name: "seed", Usage: "random seed for reproducible runs, 0 is random", Sources: cli.EnvVars("WDL_SEED"), Destination: &seed},
					&cli.IntFlag{Name: "top", Aliases: []string{"t"}, Value: 100, Usage: "print only the best n, 0 is all", Destination: &top},
					&cli.BoolFlag{Name: "chart", Usage: "chart wins per number of turns for the best opening", Destination: &chart},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					return batch(ctx, globalConfig, cmd.Args().Slice(), sims, workers, seed, top, chart)
				},
			},
		},
	}

	// interrupting a batch keeps the openings already ranked
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cmd.Run(ctx, os.Args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("wdl")
	}
}
