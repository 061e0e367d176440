package dataio

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const respondentsCSV = `nomem_encr,birthyear_bg,cf01,extra,cw02
000101,1990,3,x,NA
000102,,4,y,2
000103,1985,NaN,z,1
`

func TestReadTable_KeepsRequestedColumns(t *testing.T) {
	df, err := ReadTable(strings.NewReader(respondentsCSV), []string{"nomem_encr", "birthyear_bg", "cf01", "cw02", "absent"})
	require.NoError(t, err)

	assert.Equal(t, []string{"nomem_encr", "birthyear_bg", "cf01", "cw02"}, df.Names())
	assert.Equal(t, 3, df.Nrow())

	// Identifiers keep their leading zeros.
	assert.Equal(t, []string{"000101", "000102", "000103"}, df.Col("nomem_encr").Records())
	assert.Equal(t, series.String, df.Col("nomem_encr").Type())
	assert.Equal(t, series.Float, df.Col("cf01").Type())

	by := df.Col("birthyear_bg").Float()
	assert.Equal(t, 1990.0, by[0])
	assert.True(t, math.IsNaN(by[1]))
	assert.Equal(t, 1985.0, by[2])

	assert.True(t, math.IsNaN(df.Col("cf01").Float()[2]))
	assert.True(t, math.IsNaN(df.Col("cw02").Float()[0]))
}

func TestReadTable_NilKeepLoadsEverything(t *testing.T) {
	df, err := ReadTable(strings.NewReader(respondentsCSV), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"nomem_encr", "birthyear_bg", "cf01", "extra", "cw02"}, df.Names())
}

func TestReadTable_DuplicateHeaderKeepsFirst(t *testing.T) {
	input := "nomem_encr,cf01,cf01\nA,1,2\n"
	df, err := ReadTable(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"nomem_encr", "cf01"}, df.Names())
	assert.Equal(t, []float64{1}, df.Col("cf01").Float())
}

func TestReadTable_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		isErr error
	}{
		{"empty input", "", nil},
		{"header only", "nomem_encr,cf01\n", ErrEmptyTable},
		{"ragged row", "nomem_encr,cf01\nA,1,2\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTable(strings.NewReader(tt.input), nil)
			require.Error(t, err)
			if tt.isErr != nil {
				assert.True(t, errors.Is(err, tt.isErr))
			}
		})
	}
}

func TestReadTable_BlankIdentifierStaysBlank(t *testing.T) {
	input := "nomem_encr,cf01\n,1\n000102,NA\n"
	df, err := ReadTable(strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"nomem_encr", "cf01"}, df.Names())
	assert.Equal(t, []string{"", "000102"}, df.Col("nomem_encr").Records())
	assert.True(t, math.IsNaN(df.Col("cf01").Float()[1]))

	out := dataframe.New(
		df.Col("nomem_encr"),
		series.New([]int{1, 0}, series.Int, "prediction"),
	)
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, out))
	assert.Equal(t, "nomem_encr,prediction\n,1\n000102,0\n", buf.String())
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "data.csv")
	outcomePath := filepath.Join(dir, "outcome.csv")
	require.NoError(t, os.WriteFile(dataPath, []byte(respondentsCSV), 0o644))
	require.NoError(t, os.WriteFile(outcomePath, []byte("nomem_encr,new_child,note\n000101,1,a\n000102,,b\n"), 0o644))

	respondents, err := ReadRespondentsFile(dataPath, []string{"nomem_encr", "cf01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"nomem_encr", "cf01"}, respondents.Names())

	outcomes, err := ReadOutcomesFile(outcomePath)
	require.NoError(t, err)
	assert.Equal(t, []string{"nomem_encr", "new_child"}, outcomes.Names())
	labels := outcomes.Col("new_child").Float()
	assert.Equal(t, 1.0, labels[0])
	assert.True(t, math.IsNaN(labels[1]))

	background, err := ReadBackgroundFile(dataPath)
	require.NoError(t, err)
	assert.Equal(t, 5, background.Ncol())

	_, err = ReadRespondentsFile(filepath.Join(dir, "absent.csv"), nil)
	assert.Error(t, err)
}

func predictionTable() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"000101", "000102"}, series.String, "nomem_encr"),
		series.New([]int{1, 0}, series.Int, "prediction"),
	)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, predictionTable()))
	assert.Equal(t, "nomem_encr,prediction\n000101,1\n000102,0\n", buf.String())
}

func TestWriteTableFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "predictions.csv")

	require.NoError(t, WriteTableFile(path, predictionTable()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nomem_encr,prediction\n000101,1\n000102,0\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")

	back, err := ReadTable(bytes.NewReader(data), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"000101", "000102"}, back.Col("nomem_encr").Records())
}
