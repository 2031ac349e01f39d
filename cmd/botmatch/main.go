// Command botmatch runs offline bot-vs-secret evaluation matches and reports
// per-strategy solve rates. Useful for comparing strategies before wiring a
// new one into the server.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/talmalka/worduel/api/internal/bot"
	"github.com/talmalka/worduel/api/internal/words"
	"github.com/talmalka/worduel/api/pkg/wordle"
)

type result struct {
	Strategy     string  `json:"strategy"`
	Games        int     `json:"games"`
	Solved       int     `json:"solved"`
	SolveRate    float64 `json:"solve_rate"`
	AvgGuesses   float64 `json:"avg_guesses"` // over solved games
	TotalGuesses int     `json:"-"`
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var (
		strategyCfg string
		numGames    int
		workers     int
		language    string
		difficulty  string
		seed        int64
		jsonOut     bool
	)

	flag.StringVar(&strategyCfg, "s", "random,frequency,entropy", "Comma-separated strategies to evaluate")
	flag.IntVar(&numGames, "n", 100, "Number of games per strategy")
	flag.IntVar(&workers, "workers", 4, "Concurrency (parallel games)")
	flag.StringVar(&language, "lang", "en", "Word list language")
	flag.StringVar(&difficulty, "difficulty", "normal", "Board difficulty (easy/normal/hard)")
	flag.Int64Var(&seed, "seed", 0, "Seed for bot randomness (0 = nondeterministic)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.Parse()

	if seed != 0 {
		bot.SeedBotRng(seed)
		defer bot.ResetBotRng()
		// The seeded source is not safe for concurrent use.
		workers = 1
	}

	store, err := words.Load(os.Getenv("WORDS_DIR"))
	if err != nil {
		log.Fatal().Err(err).Msg("Word list load failed")
	}

	width := wordle.Difficulty(difficulty).Width()
	pool := store.Answers(language, width)
	if len(pool) == 0 {
		log.Fatal().Str("language", language).Int("width", width).Msg("No answer list")
	}

	var results []result
	for _, name := range strings.Split(strategyCfg, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		results = append(results, evaluate(name, store, language, width, pool, numGames, workers))
	}

	sort.Slice(results, func(i, j int) bool { return results[i].SolveRate > results[j].SolveRate })

	if jsonOut {
		json.NewEncoder(os.Stdout).Encode(results)
		return
	}
	fmt.Printf("%-12s %8s %8s %10s %12s\n", "strategy", "games", "solved", "rate", "avg guesses")
	for _, r := range results {
		fmt.Printf("%-12s %8d %8d %9.1f%% %12.2f\n", r.Strategy, r.Games, r.Solved, r.SolveRate*100, r.AvgGuesses)
	}
}

func evaluate(name string, store *words.Store, language string, width int, pool []string, numGames, workers int) result {
	strategy := bot.StrategyForName(name)
	log.Info().Str("strategy", strategy.Name()).Int("games", numGames).Msg("Evaluating")

	type outcome struct {
		solved  bool
		guesses int
	}
	outcomes := make(chan outcome, numGames)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				secret, err := store.RandomAnswer(language, width)
				if err != nil {
					log.Error().Err(err).Msg("Draw secret failed")
					outcomes <- outcome{}
					continue
				}
				solved, guesses := playOne(strategy, secret, pool)
				outcomes <- outcome{solved: solved, guesses: guesses}
			}
		}()
	}

	go func() {
		for i := 0; i < numGames; i++ {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(outcomes)
	}()

	res := result{Strategy: strategy.Name(), Games: numGames}
	for o := range outcomes {
		if o.solved {
			res.Solved++
			res.TotalGuesses += o.guesses
		}
	}
	res.SolveRate = float64(res.Solved) / float64(res.Games)
	if res.Solved > 0 {
		res.AvgGuesses = float64(res.TotalGuesses) / float64(res.Solved)
	}
	return res
}

func playOne(strategy bot.Strategy, secret string, pool []string) (bool, int) {
	m := wordle.NewMatch(secret, wordle.DefaultMaxGuesses)
	for i := 0; i < m.MaxGuesses; i++ {
		guess, err := strategy.NextGuess(m, pool)
		if err != nil {
			return false, i
		}
		if _, err := m.ApplyGuess(wordle.Bot, guess); err != nil {
			return false, i
		}
		if m.Solved(wordle.Bot) {
			return true, i + 1
		}
	}
	return false, m.MaxGuesses
}
