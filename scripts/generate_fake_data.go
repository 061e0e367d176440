package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"prefer-predictor/internal/common"
	"prefer-predictor/internal/dataio"
	"prefer-predictor/internal/features"
)

func main() {
	var (
		outDir      = flag.String("out", "data", "Output directory")
		rows        = flag.Int("rows", 500, "Number of respondents")
		seed        = flag.Int64("seed", 1, "Random seed")
		missingRate = flag.Float64("missing", 0.3, "Share of missing survey answers")
		labelGap    = flag.Float64("label-missing", 0.2, "Share of respondents without an outcome")
	)
	flag.Parse()

	fmt.Printf("Generating fake panel data...\n")
	fmt.Printf("  Rows: %d\n", *rows)
	fmt.Printf("  Seed: %d\n", *seed)
	fmt.Printf("  Output: %s\n", *outDir)

	rng := rand.New(rand.NewSource(*seed))
	respondents, outcomes := generate(rng, *rows, *missingRate, *labelGap)

	dataPath := filepath.Join(*outDir, "PreFer_fake_data.csv")
	if err := dataio.WriteTableFile(dataPath, respondents); err != nil {
		log.Fatalf("Failed to write respondents: %v", err)
	}
	outcomePath := filepath.Join(*outDir, "PreFer_fake_outcome.csv")
	if err := dataio.WriteTableFile(outcomePath, outcomes); err != nil {
		log.Fatalf("Failed to write outcomes: %v", err)
	}

	fmt.Printf("✓ Wrote %s and %s\n", dataPath, outcomePath)
}

// generate builds a respondent table carrying every required column and an
// outcome table whose label leans towards younger respondents.
func generate(rng *rand.Rand, n int, missingRate, labelGap float64) (dataframe.DataFrame, dataframe.DataFrame) {
	ids := make([]string, n)
	birthYears := make([]float64, n)
	labels := make([]float64, n)
	for i := 0; i < n; i++ {
		ids[i] = fmt.Sprintf("%06d", 100000+i)
		birthYears[i] = float64(1965 + rng.Intn(40))
		if rng.Float64() < 0.05 {
			birthYears[i] = math.NaN()
		}

		p := 0.1
		if !math.IsNaN(birthYears[i]) && birthYears[i] > 1985 {
			p = 0.35
		}
		labels[i] = 0
		if rng.Float64() < p {
			labels[i] = 1
		}
		if rng.Float64() < labelGap {
			labels[i] = math.NaN()
		}
	}

	cols := []series.Series{
		series.New(ids, series.String, common.IdentifierColumn),
		series.New(birthYears, series.Float, common.BirthYearColumn),
	}
	for _, name := range features.KeptColumns.Raw() {
		values := make([]float64, n)
		for i := range values {
			if rng.Float64() < missingRate {
				values[i] = math.NaN()
				continue
			}
			values[i] = float64(rng.Intn(6))
		}
		cols = append(cols, series.New(values, series.Float, name))
	}

	respondents := dataframe.New(cols...)
	outcomes := dataframe.New(
		series.New(ids, series.String, common.IdentifierColumn),
		series.New(labels, series.Float, common.OutcomeColumn),
	)
	return respondents, outcomes
}
