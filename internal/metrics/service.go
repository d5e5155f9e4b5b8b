package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		UploadsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petanque_uploads_processed_total",
			Help: "The total number of result workbooks imported successfully.",
		}),
		UploadsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petanque_uploads_failed_total",
			Help: "The total number of result workbooks rejected or failed.",
		}),
		ParseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "petanque_workbook_parse_duration_seconds",
			Help:    "The duration of parsing and scoring one workbook.",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		ResultsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petanque_team_results_total",
			Help: "The total number of per-team results produced.",
		}),
		ScoringFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petanque_scoring_fallbacks_total",
			Help: "The total number of bracket positions scored 0 for lack of a points table entry.",
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petanque_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "petanque_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "petanque_startup_time_seconds",
			Help: "The time it took for the application to start up.",
		}),
	}

	reg.MustRegister(
		s.UploadsProcessed,
		s.UploadsFailed,
		s.ParseDuration,
		s.ResultsProduced,
		s.ScoringFallbacks,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncUploadsProcessed() {
	s.UploadsProcessed.Inc()
}

func (s *Service) IncUploadsFailed() {
	s.UploadsFailed.Inc()
}

func (s *Service) ObserveParseDuration(duration float64) {
	s.ParseDuration.Observe(duration)
}

func (s *Service) AddResultsProduced(count int) {
	s.ResultsProduced.Add(float64(count))
}

func (s *Service) AddScoringFallbacks(count int) {
	s.ScoringFallbacks.Add(float64(count))
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
