package http

import (
	"net/http"

	"github.com/mauv0809/petanque-ratings/internal/config"
	"github.com/mauv0809/petanque-ratings/internal/metrics"
	"github.com/mauv0809/petanque-ratings/internal/notifier"
	"github.com/mauv0809/petanque-ratings/internal/processor"
	"github.com/mauv0809/petanque-ratings/internal/results"
	"github.com/mauv0809/petanque-ratings/internal/roster"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

type Server struct {
	Roster         roster.Store
	Results        results.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Processor      *processor.Processor
	Router         *http.ServeMux
}

type addPlayerRequest struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

type errorResponse struct {
	Errors []string `json:"errors"`
}

type resultsResponse struct {
	Tournament tournament.Tournament         `json:"tournament"`
	Results    []tournament.TournamentResult `json:"results"`
}
