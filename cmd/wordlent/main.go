package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/TwiN/go-color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3" // imports as package "cli"
	"golang.org/x/sync/errgroup"

	"github.com/wordlent/wordlent/cache"
	"github.com/wordlent/wordlent/history"
	"github.com/wordlent/wordlent/solver"
	"github.com/wordlent/wordlent/words"
)

// engine bundles the pieces every command needs: the word lists, the
// secret-universe dictionary, the pattern table and the selector.
type engine struct {
	lists    *words.Lists
	dict     *solver.Dictionary
	table    *solver.Table
	selector *solver.Selector
	workers  int
	progress bool
}

func newEngine(count, workers, cutoff int, cacheDir string, progress bool) (*engine, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	lists, err := words.Load()
	if err != nil {
		return nil, err
	}
	if count > 0 && count < len(lists.Answers) {
		lists, err = words.New(lists.Answers[:count], lists.Guesses)
		if err != nil {
			return nil, err
		}
	}

	dict, err := solver.NewDictionary(lists.Answers)
	if err != nil {
		return nil, err
	}

	table := solver.NewTable(dict)
	if cacheDir != "" {
		fp := solver.Fingerprint(lists.Guesses, lists.Answers)
		store, err := cache.Open(cacheDir)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		cached, err := store.Load(fp, dict)
		switch {
		case err == nil:
			table = cached
		case errors.Is(err, cache.ErrNotFound):
			log.Debug().Str("fingerprint", fp).Msg("no cached table, computing lazily")
		default:
			return nil, err
		}
	}

	selector := solver.NewSelector(table, lists.Guesses)
	selector.FewCutoff = cutoff
	selector.Workers = workers

	return &engine{
		lists:    lists,
		dict:     dict,
		table:    table,
		selector: selector,
		workers:  workers,
		progress: progress,
	}, nil
}

func (e *engine) bar(n int, description string) *progressbar.ProgressBar {
	if e.progress {
		return progressbar.Default(int64(n), description)
	}
	return progressbar.DefaultSilent(int64(n), description)
}

// next prints the best next guess given the guess/pattern pairs played
// so far, plus the secrets still possible.
func next(ctx context.Context, e *engine, pairs []string) error {
	possible := e.dict.AllCandidates()
	for i := 0; i < len(pairs); i += 2 {
		guess := strings.ToLower(pairs[i])
		if !e.lists.Allowed(guess) {
			return fmt.Errorf("guess not in dictionary: %s", guess)
		}
		pattern, ok := solver.ParsePattern(pairs[i+1])
		if !ok || len(pairs[i+1]) != e.lists.Length {
			return fmt.Errorf("pattern must be %d of r, y, g: %s", e.lists.Length, pairs[i+1])
		}
		possible = solver.Filter(e.table, possible, guess, pattern)
	}

	guess, err := e.selector.Select(ctx, possible)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%.3f bits, %d possible):", guess.Word, guess.Score, possible.Len())
	for _, word := range possible.Words() {
		fmt.Print(" ", word)
	}
	fmt.Println()
	return nil
}

// consoleGame plays against a human at the terminal: the guess is
// printed for them to enter into their game, and they type back the
// colors they saw as r, y, g. Entering q gives up.
type consoleGame struct {
	in      *bufio.Scanner
	length  int
	guesses []string
}

func (g *consoleGame) Submit(_ context.Context, guess string) error {
	g.guesses = append(g.guesses, guess)
	fmt.Printf("guess %d: %s\n", len(g.guesses), strings.ToUpper(guess))
	return nil
}

func (g *consoleGame) Observe(_ context.Context, turn int) (solver.Pattern, error) {
	for {
		fmt.Printf("colors (%d of r/y/g, q to quit): ", g.length)
		if !g.in.Scan() {
			return 0, fmt.Errorf("input closed")
		}
		line := strings.TrimSpace(strings.ToLower(g.in.Text()))
		if line == "q" {
			return 0, fmt.Errorf("gave up")
		}
		pattern, ok := solver.ParsePattern(line)
		if !ok || len(line) != g.length {
			fmt.Println("bad pattern, try again")
			continue
		}
		fmt.Println(renderRow(g.guesses[turn-1], pattern))
		return pattern, nil
	}
}

// renderRow colors a guess the way the game board would show it.
func renderRow(guess string, pattern solver.Pattern) string {
	var b strings.Builder
	for i := 0; i < len(guess); i++ {
		letter := strings.ToUpper(string(guess[i]))
		switch pattern.Mark(i) {
		case solver.Correct:
			b.WriteString(color.Ize(color.Green, letter))
		case solver.Present:
			b.WriteString(color.Ize(color.Yellow, letter))
		default:
			b.WriteString(color.Ize(color.Gray, letter))
		}
	}
	return b.String()
}

func play(ctx context.Context, e *engine, maxTurns int) error {
	game := &consoleGame{in: bufio.NewScanner(os.Stdin), length: e.lists.Length}
	session := solver.NewSession(e.dict, e.table, e.selector, maxTurns)
	result := session.Run(ctx, game)
	switch result.Status {
	case solver.Solved:
		fmt.Printf("solved in %d\n", result.Turns)
	case solver.Exhausted:
		fmt.Println("out of guesses")
		if result.Reason != nil {
			fmt.Println("feedback was inconsistent:", result.Reason)
		}
	case solver.Aborted:
		fmt.Println("aborted:", result.Reason)
	}
	return nil
}

// sim solves every secret (or the ones given) against honest feedback
// and prints the turn distribution.
func sim(ctx context.Context, e *engine, secretArgs []string, maxTurns int, dbPath string) error {
	secrets := secretArgs
	if len(secrets) == 0 {
		secrets = e.dict.Words()
	} else {
		for _, secret := range secrets {
			if _, ok := e.dict.Index(secret); !ok {
				return fmt.Errorf("secret not in dictionary: %s", secret)
			}
		}
	}

	var store *history.Store
	if dbPath != "" {
		var err error
		store, err = history.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	bar := e.bar(len(secrets), "simulating")
	results := make([]solver.Result, len(secrets))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)
	for i, secret := range secrets {
		group.Go(func() error {
			results[i] = solver.Simulate(gctx, e.dict, e.table, e.selector, secret, maxTurns)
			bar.Add(1)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	if store != nil {
		for i, secret := range secrets {
			if err := store.Insert(ctx, secret, results[i]); err != nil {
				return err
			}
		}
	}

	byTurns := map[int]int{}
	failed := []string{}
	for i, result := range results {
		if result.Status != solver.Solved {
			failed = append(failed, secrets[i])
			continue
		}
		byTurns[result.Turns]++
	}

	turns := make([]int, 0, len(byTurns))
	for k := range byTurns {
		turns = append(turns, k)
	}
	sort.Ints(turns)
	total := 0.0
	for _, k := range turns {
		fmt.Printf("%d turns: %d\n", k, byTurns[k])
		total += float64(k * byTurns[k])
	}
	solved := len(secrets) - len(failed)
	if solved > 0 {
		fmt.Printf("solved %d/%d, average %.3f turns\n", solved, len(secrets), total/float64(solved))
	}
	if len(failed) > 0 {
		sort.Strings(failed)
		fmt.Println("unsolved:", strings.Join(failed, " "))
	}
	return nil
}

// firstWords ranks opening guesses by expected information.
func firstWords(ctx context.Context, e *engine, top int) error {
	possible := e.dict.AllCandidates()
	candidates := e.lists.Guesses
	scores := make([]float64, len(candidates))
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(e.workers)
	chunk := 64
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		group.Go(func() error {
			for i := start; i < end; i++ {
				scores[i] = solver.Entropy(e.table, candidates[i], possible)
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	ranked := make([]solver.ScoredGuess, len(candidates))
	for i, word := range candidates {
		ranked[i] = solver.ScoredGuess{Word: word, Score: scores[i]}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Word < ranked[j].Word
	})
	if top > len(ranked) {
		top = len(ranked)
	}
	for _, guess := range ranked[:top] {
		fmt.Printf("%s %.4f\n", guess.Word, guess.Score)
	}
	return nil
}

// warm computes the full pattern table and stores it in the cache.
func warm(ctx context.Context, e *engine, cacheDir string) error {
	bar := e.bar(len(e.lists.Guesses), "building table")
	err := e.table.Build(ctx, e.lists.Guesses, e.workers, func(n int) { bar.Add(n) })
	if err != nil {
		return err
	}
	if cacheDir == "" {
		log.Warn().Msg("no cache dir, table not persisted")
		return nil
	}
	store, err := cache.Open(cacheDir)
	if err != nil {
		return err
	}
	defer store.Close()
	fp := solver.Fingerprint(e.lists.Guesses, e.lists.Answers)
	return store.Save(fp, e.table)
}

func recent(ctx context.Context, dbPath string, limit int) error {
	if dbPath == "" {
		return fmt.Errorf("recent needs --db")
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	records, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	for _, r := range records {
		fmt.Printf("%s %s %s (%d): %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Secret, r.Status, r.Turns,
			strings.Join(r.Guesses, " "))
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

func setupLogging() {
	_ = godotenv.Load()
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	setupLogging()

	count := 0
	workers := 0
	cutoff := solver.DefaultFewCutoff
	maxTurns := solver.DefaultMaxTurns
	cacheDir := ""
	dbPath := ""
	progress := false
	profile := false
	top := 20
	limit := 20

	cmd := &cli.Command{
		Name:  "wordlent",
		Usage: "entropy-driven wordle solver",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of answer words, 0 is all words",
				Destination: &count,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       0,
				Usage:       "parallel workers, 0 is GOMAXPROCS",
				Destination: &workers,
			},
			&cli.IntFlag{
				Name:        "cutoff",
				Value:       solver.DefaultFewCutoff,
				Usage:       "guess a possible secret directly when this few remain",
				Destination: &cutoff,
			},
			&cli.IntFlag{
				Name:        "turns",
				Value:       solver.DefaultMaxTurns,
				Usage:       "maximum guesses per game",
				Destination: &maxTurns,
			},
			&cli.StringFlag{
				Name:        "cache-dir",
				Value:       "",
				Usage:       "directory for the pattern table cache",
				Destination: &cacheDir,
			},
			&cli.StringFlag{
				Name:        "db",
				Value:       "",
				Usage:       "sqlite file recording finished sessions",
				Destination: &dbPath,
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
		},
		Commands: []*cli.Command{
			{
				Name: "next",
				Usage: `next [guess pattern]...
				print the best next guess given pairs of guess and observed
				colors, like: next crane rrygr mount ggrrr`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess pattern", 1)
					}
					e, err := newEngine(count, workers, cutoff, cacheDir, progress)
					if err != nil {
						return err
					}
					return next(ctx, e, cmd.Args().Slice())
				},
			},
			{
				Name: "play",
				Usage: `play
				solve interactively: enter each suggested guess into your
				game and type back the colors you saw`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					e, err := newEngine(count, workers, cutoff, cacheDir, progress)
					if err != nil {
						return err
					}
					return play(ctx, e, maxTurns)
				},
			},
			{
				Name: "sim",
				Usage: `sim [secret]...
				simulate games against honest feedback, all answers by
				default, and print the turn distribution`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					e, err := newEngine(count, workers, cutoff, cacheDir, progress)
					if err != nil {
						return err
					}
					return sim(ctx, e, cmd.Args().Slice(), maxTurns, dbPath)
				},
			},
			{
				Name: "first",
				Usage: `first
				rank opening guesses by expected information`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       20,
						Usage:       "how many openers to print",
						Destination: &top,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile {
						def := cpuProfile()
						defer def()
					}
					e, err := newEngine(count, workers, cutoff, cacheDir, progress)
					if err != nil {
						return err
					}
					return firstWords(ctx, e, top)
				},
			},
			{
				Name: "warm",
				Usage: `warm
				precompute the full pattern table and cache it`,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					e, err := newEngine(count, workers, cutoff, "", progress)
					if err != nil {
						return err
					}
					return warm(ctx, e, cacheDir)
				},
			},
			{
				Name: "recent",
				Usage: `recent
				list recently recorded sessions`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "limit",
						Value:       20,
						Usage:       "how many sessions to list",
						Destination: &limit,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return recent(ctx, dbPath, limit)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wordlent failed")
	}
}
