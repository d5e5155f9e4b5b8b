package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncUploadsProcessed()
	IncUploadsFailed()
	ObserveParseDuration(duration float64)
	AddResultsProduced(count int)
	AddScoringFallbacks(count int)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}
