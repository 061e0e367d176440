// Package dataio loads survey tables from CSV into gota data frames and writes
// prediction tables back out.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/rs/zerolog/log"

	"prefer-predictor/internal/common"
)

// MissingValues are the cell contents read as a missing value.
var MissingValues = []string{"", "NA", "NaN", "<nil>"}

// ErrEmptyTable is returned for a CSV with a header but no data rows.
var ErrEmptyTable = errors.New("table has no rows")

// ReadTable reads a CSV with a header row. Only the columns named in keep are
// loaded (all of them when keep is nil); absent names are simply skipped so
// the caller's validation can report them. The identifier column is read as
// a string taken verbatim, every other column as float with MissingValues
// read as NaN.
func ReadTable(r io.Reader, keep []string) (dataframe.DataFrame, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read CSV header: %w", err)
	}

	indices := selectIndices(header, keep)
	selected := make([]string, len(indices))
	idPos := -1
	for i, idx := range indices {
		selected[i] = header[idx]
		if selected[i] == common.IdentifierColumn {
			idPos = i
		}
	}

	records := [][]string{selected}
	var ids []string
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("failed to read CSV line %d: %w", line, err)
		}
		row := make([]string, len(indices))
		for i, idx := range indices {
			row[i] = record[idx]
		}
		if idPos >= 0 {
			ids = append(ids, row[idPos])
		}
		records = append(records, row)
	}

	if len(records) == 1 {
		return dataframe.DataFrame{}, ErrEmptyTable
	}

	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.Float),
		dataframe.WithTypes(map[string]series.Type{common.IdentifierColumn: series.String}),
		dataframe.NaNValues(MissingValues),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to build table: %w", df.Err)
	}

	// Identifiers are labels, not measurements: a blank cell stays blank
	// instead of becoming NaN.
	if idPos >= 0 {
		df = df.Mutate(series.New(ids, series.String, common.IdentifierColumn))
		if df.Err != nil {
			return dataframe.DataFrame{}, fmt.Errorf("failed to restore identifiers: %w", df.Err)
		}
	}
	return df, nil
}

// selectIndices maps wanted column names to header positions in header order.
// A repeated header name keeps its first occurrence.
func selectIndices(header, keep []string) []int {
	var want map[string]struct{}
	if keep != nil {
		want = make(map[string]struct{}, len(keep))
		for _, name := range keep {
			want[name] = struct{}{}
		}
	}

	seen := make(map[string]struct{}, len(header))
	indices := make([]int, 0, len(header))
	for i, name := range header {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if want != nil {
			if _, ok := want[name]; !ok {
				continue
			}
		}
		indices = append(indices, i)
	}
	return indices
}

// ReadRespondentsFile loads the columns in required from a respondent CSV.
func ReadRespondentsFile(path string, required []string) (dataframe.DataFrame, error) {
	return readFile(path, required)
}

// ReadOutcomesFile loads the identifier and outcome columns of an outcome CSV.
func ReadOutcomesFile(path string) (dataframe.DataFrame, error) {
	return readFile(path, []string{common.IdentifierColumn, common.OutcomeColumn})
}

// ReadBackgroundFile loads a background CSV in full.
func ReadBackgroundFile(path string) (dataframe.DataFrame, error) {
	return readFile(path, nil)
}

func readFile(path string, keep []string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	df, err := ReadTable(file, keep)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("%s: %w", path, err)
	}

	log.Info().
		Str("file", path).
		Int("rows", df.Nrow()).
		Int("columns", df.Ncol()).
		Msg("CSV data loaded successfully")

	return df, nil
}

// WriteTable writes df as CSV with a header row.
func WriteTable(w io.Writer, df dataframe.DataFrame) error {
	if df.Err != nil {
		return df.Err
	}
	return df.WriteCSV(w)
}

// WriteTableFile writes df to path through a temporary file and a rename.
func WriteTableFile(path string, df dataframe.DataFrame) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteTable(tmp, df); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("publish %s: %w", path, err)
	}

	log.Info().Str("file", path).Int("rows", df.Nrow()).Msg("CSV data written")
	return nil
}
