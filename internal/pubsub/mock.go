package pubsub

import (
	"sync"
)

// MockPubSubClient records published events in memory.
// It is safe for concurrent use.
type MockPubSubClient struct {
	mu sync.Mutex

	SendMessageFunc func(topic EventType, data any) error

	SendMessageCalls []SendMessageCall
	Closed           bool
}

// SendMessageCall is one recorded publish.
type SendMessageCall struct {
	Topic EventType
	Data  any
}

// NewMock creates a new mock PubSubClient. The projectID is ignored.
func NewMock(projectID string) *MockPubSubClient {
	return &MockPubSubClient{}
}

// Published returns the ResultsImported events sent so far.
func (m *MockPubSubClient) Published() []ResultsImported {
	m.mu.Lock()
	defer m.mu.Unlock()
	var events []ResultsImported
	for _, call := range m.SendMessageCalls {
		if event, ok := call.Data.(ResultsImported); ok && call.Topic == EventResultsImported {
			events = append(events, event)
		}
	}
	return events
}

func (m *MockPubSubClient) SendMessage(topic EventType, data any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendMessageCalls = append(m.SendMessageCalls, SendMessageCall{Topic: topic, Data: data})
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(topic, data)
	}
	return nil
}

func (m *MockPubSubClient) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
}
