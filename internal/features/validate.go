package features

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/rs/zerolog/log"
)

var (
	// ErrColumnNotFound is matched by a ConfigurationError listing absent kept columns.
	ErrColumnNotFound = errors.New("column not found")
	// ErrMissingIdentifier is matched by a ConfigurationError when the identifier is absent.
	ErrMissingIdentifier = errors.New("identifier column missing")
)

// Severity grades a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Diagnostic codes
const (
	CodeMissingIdentifier = "missing_identifier"
	CodeMissingColumn     = "missing_column"
	CodeAgeUnimputable    = "age_unimputable"
	CodeAgeDrift          = "age_drift"
)

// Stage selects how strictly Validate treats a missing identifier.
type Stage int

const (
	// StagePrepare treats a missing identifier as an error.
	StagePrepare Stage = iota
	// StagePredict only warns; preparation later decides whether to abort.
	StagePredict
)

// Diagnostic is one finding about an input table.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Column   string   `json:"column,omitempty"`
	Message  string   `json:"message"`
}

// Diagnostics is an ordered list of findings.
type Diagnostics []Diagnostic

// ConfigurationError reports required columns absent from an input table.
type ConfigurationError struct {
	MissingIdentifier bool
	Missing           []string
}

func (e *ConfigurationError) Error() string {
	var parts []string
	if e.MissingIdentifier {
		parts = append(parts, ErrMissingIdentifier.Error())
	}
	if len(e.Missing) > 0 {
		shown := e.Missing
		if len(shown) > 10 {
			shown = shown[:10]
		}
		msg := fmt.Sprintf("%s: %s", ErrColumnNotFound, strings.Join(shown, ", "))
		if len(e.Missing) > len(shown) {
			msg += fmt.Sprintf(" (and %d more)", len(e.Missing)-len(shown))
		}
		parts = append(parts, msg)
	}
	return "configuration error: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match the sentinel errors this error carries.
func (e *ConfigurationError) Is(target error) bool {
	switch target {
	case ErrMissingIdentifier:
		return e.MissingIdentifier
	case ErrColumnNotFound:
		return len(e.Missing) > 0
	}
	return false
}

// Validate checks that table carries every column required by columns.
func Validate(table dataframe.DataFrame, columns ColumnSet, stage Stage) Diagnostics {
	present := make(map[string]struct{}, table.Ncol())
	for _, name := range table.Names() {
		present[name] = struct{}{}
	}

	var diags Diagnostics
	if _, ok := present[columns.Identifier()]; !ok {
		severity := SeverityError
		if stage == StagePredict {
			severity = SeverityWarning
		}
		diags = append(diags, Diagnostic{
			Severity: severity,
			Code:     CodeMissingIdentifier,
			Column:   columns.Identifier(),
			Message:  fmt.Sprintf("the identifier variable '%s' should be in the dataset", columns.Identifier()),
		})
	}

	for _, name := range columns.Required()[1:] {
		if _, ok := present[name]; !ok {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeMissingColumn,
				Column:   name,
				Message:  fmt.Sprintf("required column '%s' not found", name),
			})
		}
	}
	return diags
}

// HasErrors reports whether any diagnostic is error severity.
func (d Diagnostics) HasErrors() bool {
	for _, diag := range d {
		if diag.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warnings returns the warning-severity diagnostics.
func (d Diagnostics) Warnings() Diagnostics {
	var out Diagnostics
	for _, diag := range d {
		if diag.Severity == SeverityWarning {
			out = append(out, diag)
		}
	}
	return out
}

// Err folds error-severity diagnostics into a ConfigurationError, or returns nil.
func (d Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}
	cfgErr := &ConfigurationError{}
	for _, diag := range d {
		if diag.Severity != SeverityError {
			continue
		}
		switch diag.Code {
		case CodeMissingIdentifier:
			cfgErr.MissingIdentifier = true
		case CodeMissingColumn:
			cfgErr.Missing = append(cfgErr.Missing, diag.Column)
		}
	}
	return cfgErr
}

// Log writes each diagnostic to the global logger at a matching level.
func (d Diagnostics) Log() {
	for _, diag := range d {
		event := log.Info()
		switch diag.Severity {
		case SeverityWarning:
			event = log.Warn()
		case SeverityError:
			event = log.Error()
		}
		event.
			Str("code", diag.Code).
			Str("column", diag.Column).
			Msg(diag.Message)
	}
}
