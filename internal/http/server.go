package http

import (
	"net/http"

	"github.com/mauv0809/petanque-ratings/internal/config"
	"github.com/mauv0809/petanque-ratings/internal/metrics"
	"github.com/mauv0809/petanque-ratings/internal/notifier"
	"github.com/mauv0809/petanque-ratings/internal/processor"
	"github.com/mauv0809/petanque-ratings/internal/results"
	"github.com/mauv0809/petanque-ratings/internal/roster"
)

func NewServer(rosterStore roster.Store, resultsStore results.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor) *Server {
	server := &Server{
		Roster:         rosterStore,
		Results:        resultsStore,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware))
	s.Router.Handle("POST /players", Chain(s.AddPlayerHandler(), paramsMiddleware))
	s.Router.Handle("GET /tournaments/results", Chain(s.GetResultsHandler(), paramsMiddleware))
	s.Router.Handle("POST /tournaments/results", Chain(s.UploadResultsHandler(), paramsMiddleware))
	if s.Notifier != nil && s.Cfg.Slack.SigningSecret != "" {
		s.Router.Handle("POST /slack/command/results", Chain(s.ResultsCommandHandler(), paramsMiddleware, s.slackVerifier))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
