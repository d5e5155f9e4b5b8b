package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// noopClient is used when no GCP project is configured.
type noopClient struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventResultsImported EventType = "results-imported"
)

// ResultsImported is the payload of EventResultsImported.
type ResultsImported struct {
	TournamentID string         `msgpack:"tournament_id"`
	Name         string         `msgpack:"name"`
	Category     int            `msgpack:"category"`
	Results      []TeamStanding `msgpack:"results"`
}

// TeamStanding is one team's scored result as published to subscribers.
type TeamStanding struct {
	TeamKey     string   `msgpack:"team_key"`
	PlayerIDs   []string `msgpack:"player_ids"`
	Cup         string   `msgpack:"cup"`
	CupPosition string   `msgpack:"cup_position"`
	Points      int      `msgpack:"points"`
	Wins        int      `msgpack:"wins"`
	Losses      int      `msgpack:"losses"`
}
