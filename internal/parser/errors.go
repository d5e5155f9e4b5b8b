package parser

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	ErrStructural          = errors.New("workbook structure")
	ErrTeamNotFound        = errors.New("team not found")
	ErrMissingCellValue    = errors.New("missing cell value")
	ErrNoQualifyingData    = errors.New("no qualifying data")
	ErrUnsupportedGridSize = errors.New("unsupported bracket grid size")
	ErrInvalidValue        = errors.New("invalid value")
	ErrDuplicateEntry      = errors.New("duplicate entry")
)

// ValidationError is the aggregate of every recoverable problem found on one
// sheet. It unwraps to each problem so errors.Is can match any of their kinds.
type ValidationError struct {
	Sheet    string
	Problems []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		msgs = append(msgs, p.Error())
	}
	return fmt.Sprintf("sheet %q has %d problem(s): %s", e.Sheet, len(e.Problems), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() []error {
	return e.Problems
}

// problems accumulates the per-cell failures of one sheet.
type problems struct {
	sheet string
	err   error
}

func newProblems(sheet string) *problems {
	return &problems{sheet: sheet}
}

func (p *problems) add(where string, err error) {
	p.err = multierr.Append(p.err, fmt.Errorf("%s: %w", where, err))
}

// result returns nil when nothing was recorded, else a *ValidationError.
func (p *problems) result() error {
	if p.err == nil {
		return nil
	}
	return &ValidationError{Sheet: p.sheet, Problems: multierr.Errors(p.err)}
}

func structural(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrStructural, fmt.Sprintf(format, args...))
}

// Messages flattens a parse error into user-facing lines, one per problem.
func Messages(err error) []string {
	if err == nil {
		return nil
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		msgs := make([]string, 0, len(verr.Problems))
		for _, p := range verr.Problems {
			msgs = append(msgs, fmt.Sprintf("%s!%s", verr.Sheet, p.Error()))
		}
		return msgs
	}
	return []string{err.Error()}
}
