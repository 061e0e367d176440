// Package features turns raw panel-survey tables into the cleaned feature
// table the classifier is trained and evaluated on.
//
// The set of columns a cleaned table carries is a fixed contract (ColumnSet).
// Training and every later prediction run must reference the same contract;
// the artifact stores it so a mismatch is detected instead of coerced.
package features

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"prefer-predictor/internal/common"
)

// ContractVersion identifies the kept-column list shipped with this build.
const ContractVersion = "2024.1"

// KeptColumns is the feature contract used by the train and predict commands.
var KeptColumns = NewColumnSet(ContractVersion, common.IdentifierColumn, []string{common.AgeColumn}, keptRawColumns)

// ColumnSet is an immutable, ordered description of a cleaned table:
// identifier first, then derived columns, then raw survey columns.
type ColumnSet struct {
	version    string
	identifier string
	derived    []string
	raw        []string
}

// NewColumnSet copies its inputs so later changes to the slices cannot alter the set.
func NewColumnSet(version, identifier string, derived, raw []string) ColumnSet {
	return ColumnSet{
		version:    version,
		identifier: identifier,
		derived:    append([]string(nil), derived...),
		raw:        append([]string(nil), raw...),
	}
}

func (c ColumnSet) Version() string    { return c.version }
func (c ColumnSet) Identifier() string { return c.identifier }
func (c ColumnSet) Len() int           { return 1 + len(c.derived) + len(c.raw) }

// Names returns the full cleaned-table column list in order.
func (c ColumnSet) Names() []string {
	names := make([]string, 0, c.Len())
	names = append(names, c.identifier)
	names = append(names, c.derived...)
	return append(names, c.raw...)
}

// Features returns the model input columns: every name except the identifier.
func (c ColumnSet) Features() []string {
	return c.Names()[1:]
}

// Raw returns the survey columns projected through unchanged.
func (c ColumnSet) Raw() []string {
	return append([]string(nil), c.raw...)
}

// Required returns the columns an input table must carry for preparation.
func (c ColumnSet) Required() []string {
	req := make([]string, 0, len(c.raw)+2)
	req = append(req, c.identifier, common.BirthYearColumn)
	return append(req, c.raw...)
}

// Contains reports whether name is part of the cleaned table.
func (c ColumnSet) Contains(name string) bool {
	for _, n := range c.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Fingerprint is a stable digest of the ordered column names.
func (c ColumnSet) Fingerprint() string {
	return Fingerprint(c.Names())
}

// Fingerprint hashes an ordered list of column names.
func Fingerprint(names []string) string {
	sum := sha256.Sum256([]byte(strings.Join(names, "\n")))
	return hex.EncodeToString(sum[:])
}

// Diff returns the names in want that are absent from got, and the names in
// got that are absent from want. Order differences are not reported.
func Diff(want, got []string) (missing, extra []string) {
	inGot := make(map[string]struct{}, len(got))
	for _, n := range got {
		inGot[n] = struct{}{}
	}
	inWant := make(map[string]struct{}, len(want))
	for _, n := range want {
		inWant[n] = struct{}{}
		if _, ok := inGot[n]; !ok {
			missing = append(missing, n)
		}
	}
	for _, n := range got {
		if _, ok := inWant[n]; !ok {
			extra = append(extra, n)
		}
	}
	return missing, extra
}

// SameOrder reports whether a and b list identical names in identical order.
func SameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
