package results

import (
	"database/sql"
	"errors"
	"sync"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// store handles result persistence against the database.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
