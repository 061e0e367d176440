package features

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/stat"

	"prefer-predictor/internal/common"
)

// Preparer derives and projects the cleaned feature table. It holds no
// per-call state and never modifies its input.
type Preparer struct {
	columns       ColumnSet
	referenceYear int
}

// Result is the outcome of a Prepare call.
type Result struct {
	Table dataframe.DataFrame
	// ImputedAge counts rows whose age was filled with AgeMean.
	ImputedAge int
	// AgeMean is the mean of the observed ages in this table, NaN if none.
	AgeMean float64
	// ObservedAges holds the ages computed from a present birth year, in row order.
	ObservedAges []float64
	Diagnostics  Diagnostics
}

func NewPreparer(columns ColumnSet, referenceYear int) *Preparer {
	return &Preparer{columns: columns, referenceYear: referenceYear}
}

func (p *Preparer) Columns() ColumnSet { return p.columns }
func (p *Preparer) ReferenceYear() int { return p.referenceYear }

// Prepare validates raw, derives age and projects onto the contract columns.
// background is accepted for interface compatibility and is not used.
func (p *Preparer) Prepare(raw dataframe.DataFrame, background *dataframe.DataFrame) (Result, error) {
	_ = background

	if raw.Err != nil {
		return Result{}, fmt.Errorf("input table: %w", raw.Err)
	}

	diags := Validate(raw, p.columns, StagePrepare)
	if err := diags.Err(); err != nil {
		return Result{Diagnostics: diags}, err
	}

	// Selecting first gives us copies, so the mutation below cannot leak into raw.
	base := raw.Select(p.columns.Required())
	if base.Err != nil {
		return Result{Diagnostics: diags}, fmt.Errorf("select required columns: %w", base.Err)
	}

	birthYears := base.Col(common.BirthYearColumn).Float()
	ages, observed, mean, imputed := DeriveAge(birthYears, p.referenceYear)
	if len(birthYears) > 0 && len(observed) == 0 {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeAgeUnimputable,
			Column:   common.AgeColumn,
			Message:  fmt.Sprintf("no row has %s; age left missing", common.BirthYearColumn),
		})
	}

	withAge := base.Mutate(series.New(ages, series.Float, common.AgeColumn))
	if withAge.Err != nil {
		return Result{Diagnostics: diags}, fmt.Errorf("derive age: %w", withAge.Err)
	}

	cleaned := withAge.Select(p.columns.Names())
	if cleaned.Err != nil {
		return Result{Diagnostics: diags}, fmt.Errorf("project kept columns: %w", cleaned.Err)
	}

	return Result{
		Table:        cleaned,
		ImputedAge:   imputed,
		AgeMean:      mean,
		ObservedAges: observed,
		Diagnostics:  diags,
	}, nil
}

// DeriveAge computes referenceYear - birthYear per row and fills missing
// values with the mean of the observed ones. When no birth year is observed
// the ages stay NaN and mean is NaN.
func DeriveAge(birthYears []float64, referenceYear int) (ages, observed []float64, mean float64, imputed int) {
	ages = make([]float64, len(birthYears))
	for i, by := range birthYears {
		if math.IsNaN(by) {
			ages[i] = math.NaN()
			continue
		}
		ages[i] = float64(referenceYear) - by
		observed = append(observed, ages[i])
	}

	if len(observed) == 0 {
		return ages, observed, math.NaN(), 0
	}

	mean = stat.Mean(observed, nil)
	for i := range ages {
		if math.IsNaN(ages[i]) {
			ages[i] = mean
			imputed++
		}
	}
	return ages, observed, mean, imputed
}
