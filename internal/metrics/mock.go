package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	uploadsProcessed int
	uploadsFailed    int
	parseDurations   []float64
	resultsProduced  int
	scoringFallbacks int
	slackNotifSent   int
	slackNotifFailed int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		parseDurations: make([]float64, 0),
	}
}

func (m *Mock) IncUploadsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsProcessed++
}

func (m *Mock) IncUploadsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploadsFailed++
}

func (m *Mock) ObserveParseDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parseDurations = append(m.parseDurations, duration)
}

func (m *Mock) AddResultsProduced(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resultsProduced += count
}

func (m *Mock) AddScoringFallbacks(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scoringFallbacks += count
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// UploadsProcessed returns the number of times IncUploadsProcessed was called.
func (m *Mock) UploadsProcessed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploadsProcessed
}

// UploadsFailed returns the number of times IncUploadsFailed was called.
func (m *Mock) UploadsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uploadsFailed
}

// ParseDurations returns every observed parse duration.
func (m *Mock) ParseDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.parseDurations...)
}

// ResultsProduced returns the sum passed to AddResultsProduced.
func (m *Mock) ResultsProduced() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resultsProduced
}

// ScoringFallbacks returns the sum passed to AddScoringFallbacks.
func (m *Mock) ScoringFallbacks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scoringFallbacks
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// StartupTime returns the last value passed to SetStartupTime.
func (m *Mock) StartupTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startupTime
}
