package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sopagames/lettersoup/internal/puzzle"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	defaults := puzzle.DefaultOptions()
	var (
		rows     = flag.Int("rows", envInt("LETTERSOUP_ROWS", puzzle.DefaultRows), "board rows")
		cols     = flag.Int("cols", envInt("LETTERSOUP_COLS", puzzle.DefaultCols), "board columns")
		language = flag.String("lang", getEnv("LETTERSOUP_LANG", defaults.Language), "board language (en, es, fr)")
		vowels   = flag.Float64("vowels", defaults.VowelProbability, "probability of a forced vowel per cell")
		specials = flag.Float64("specials", defaults.SpecialLetterProbability, "probability of a borrowed special glyph per cell")
		daily    = flag.Bool("daily", false, "generate today's daily board")
		date     = flag.String("date", "", "daily board for a specific date, YYYY-MM-DD (implies -daily)")
		count    = flag.Int("n", 1, "number of boards to generate")
		points   = flag.Bool("points", false, "print point values under each board")
	)
	flag.Parse()

	if *rows <= 0 || *cols <= 0 {
		log.Fatal().Int("rows", *rows).Int("cols", *cols).Msg("rows and cols must be positive")
	}

	if *date != "" || *daily {
		t := time.Now()
		if *date != "" {
			var err error
			t, err = time.Parse("2006-01-02", *date)
			if err != nil {
				log.Fatal().Err(err).Str("date", *date).Msg("invalid date")
			}
		}
		p := puzzle.NewDailyAt(t)
		log.Debug().Str("id", p.ID.String()).Str("date", p.DateKey).Msg("generated daily board")
		printPuzzle(p, *points)
		return
	}

	opts := puzzle.Options{
		Language:                 *language,
		VowelProbability:         *vowels,
		SpecialLetterProbability: *specials,
	}
	for i := 0; i < *count; i++ {
		if i > 0 {
			fmt.Println()
		}
		p := puzzle.New(*rows, *cols, opts)
		log.Debug().Str("id", p.ID.String()).Str("language", p.Language).Msg("generated board")
		printPuzzle(p, *points)
	}
}

// printPuzzle writes the board, optionally followed by per-cell point values.
func printPuzzle(p *puzzle.Puzzle, withPoints bool) {
	fmt.Println(p.Board.String())
	if !withPoints {
		return
	}
	for _, row := range p.Board {
		vals := make([]string, len(row))
		for i, cell := range row {
			vals[i] = strconv.Itoa(puzzle.LetterPoints(cell, p.Language))
		}
		fmt.Println(strings.Join(vals, " "))
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
