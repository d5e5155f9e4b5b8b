package roster

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrPlayerAmbiguous = errors.New("player name is ambiguous")
)

// AmbiguousError lists every roster entry a name matched.
type AmbiguousError struct {
	Query   string
	Matches []tournament.Player
}

func (e *AmbiguousError) Error() string {
	names := make([]string, 0, len(e.Matches))
	for _, p := range e.Matches {
		names = append(names, p.Name)
	}
	return fmt.Sprintf("%s: %q matches %s", ErrPlayerAmbiguous, e.Query, strings.Join(names, "; "))
}

func (e *AmbiguousError) Unwrap() error {
	return ErrPlayerAmbiguous
}

// store handles roster queries against the database.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
