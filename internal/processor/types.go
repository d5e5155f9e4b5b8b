package processor

import (
	"errors"

	"github.com/mauv0809/petanque-ratings/internal/metrics"
	"github.com/mauv0809/petanque-ratings/internal/pubsub"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

var ErrInvalidRequest = errors.New("invalid import request")

// Processor turns uploaded workbooks into stored, scored results.
type Processor struct {
	parser   Parser
	store    Store
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}

// ImportRequest is one uploaded results workbook. An empty TournamentID
// creates a new tournament; an existing one has its results replaced.
type ImportRequest struct {
	TournamentID string
	Name         string
	Category     tournament.Category
	Workbook     []byte
	DryRun       bool
}

// ImportSummary describes a successful import.
type ImportSummary struct {
	Tournament tournament.Tournament         `json:"tournament"`
	Results    []tournament.TournamentResult `json:"results"`
	Warnings   int                           `json:"warnings"`
	DryRun     bool                          `json:"dry_run"`
}
