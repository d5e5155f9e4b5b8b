package tournament

import (
	"fmt"
	"slices"
	"strings"
)

// Category is the federation tier of a tournament.
type Category int

const (
	CategoryFederal  Category = 1
	CategoryRegional Category = 2
)

// Valid reports whether the category is one the points tables know about.
func (c Category) Valid() bool {
	return c == CategoryFederal || c == CategoryRegional
}

// Cup is a bracket tier.
type Cup string

const (
	CupNone Cup = ""
	CupA    Cup = "A"
	CupB    Cup = "B"
	CupC    Cup = "C"
)

// ParseCup accepts a cup letter written with either Latin or Cyrillic glyphs.
func ParseCup(raw string) (Cup, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "a", "а":
		return CupA, nil
	case "b", "б":
		return CupB, nil
	case "c", "с":
		return CupC, nil
	}
	return CupNone, fmt.Errorf("unknown cup %q", raw)
}

// CupPosition is the furthest stage a team reached in an elimination bracket.
type CupPosition string

const (
	PositionNone         CupPosition = ""
	PositionWinner       CupPosition = "WINNER"
	PositionRunnerUp     CupPosition = "RUNNER_UP"
	PositionThirdPlace   CupPosition = "THIRD_PLACE"
	PositionSemiFinal    CupPosition = "SEMI_FINAL"
	PositionQuarterFinal CupPosition = "QUARTER_FINAL"
	PositionRoundOf16    CupPosition = "ROUND_OF_16"
)

// Rank orders positions so the best stage a team reached can be kept.
// Higher is better; unknown positions rank 0.
func (p CupPosition) Rank() int {
	switch p {
	case PositionWinner:
		return 6
	case PositionRunnerUp:
		return 5
	case PositionThirdPlace:
		return 4
	case PositionSemiFinal:
		return 3
	case PositionQuarterFinal:
		return 2
	case PositionRoundOf16:
		return 1
	}
	return 0
}

// Better reports whether p outranks other.
func (p CupPosition) Better(other CupPosition) bool {
	return p.Rank() > other.Rank()
}

// ParseCupPosition reads a position as written on the manual results sheet:
// either a place/fraction ("1", "2", "3", "1/2", "1/4", "1/8") or an enum name.
func ParseCupPosition(raw string) (CupPosition, error) {
	value := strings.ToUpper(strings.Join(strings.Fields(raw), "_"))
	switch value {
	case "1", "WINNER":
		return PositionWinner, nil
	case "2", "RUNNER_UP":
		return PositionRunnerUp, nil
	case "3", "THIRD_PLACE":
		return PositionThirdPlace, nil
	case "1/2", "SEMI_FINAL", "ROUND_OF_4":
		return PositionSemiFinal, nil
	case "1/4", "QUARTER_FINAL", "ROUND_OF_8":
		return PositionQuarterFinal, nil
	case "1/8", "ROUND_OF_16":
		return PositionRoundOf16, nil
	}
	return PositionNone, fmt.Errorf("unknown cup position %q", raw)
}

// Player is a roster entry. It is owned by the roster store.
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender,omitempty"`
}

// TeamEntry is one registered team within a single parsing run. OrderNum is
// the team's index in the run's team list and only correlates data inside
// that run.
type TeamEntry struct {
	OrderNum int      `json:"order_num"`
	Players  []Player `json:"players"`
}

// PlayerIDs returns the team's player ids in ascending order.
func (t TeamEntry) PlayerIDs() []string {
	ids := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		ids = append(ids, p.ID)
	}
	slices.Sort(ids)
	return ids
}

// Key identifies a team by its player set, independent of player order.
func (t TeamEntry) Key() string {
	return strings.Join(t.PlayerIDs(), ":")
}

// SameTeam reports whether both entries hold the same set of players.
func (t TeamEntry) SameTeam(other TeamEntry) bool {
	return t.Key() == other.Key()
}

// HasPlayer reports whether the player belongs to the team.
func (t TeamEntry) HasPlayer(playerID string) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Label is a human readable team name used in messages.
func (t TeamEntry) Label() string {
	names := make([]string, 0, len(t.Players))
	for _, p := range t.Players {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// QualifyingResult holds a team's record in the Swiss or group stage.
type QualifyingResult struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// Placement is a team's decoded position in one cup.
type Placement struct {
	Cup      Cup         `json:"cup"`
	Position CupPosition `json:"position"`
}

// ManualEntry is a row of the manual results sheet. A nil Points means the
// points must be computed from the tables.
type ManualEntry struct {
	OrderNum int         `json:"order_num"`
	Cup      Cup         `json:"cup"`
	Position CupPosition `json:"position"`
	Points   *int        `json:"points,omitempty"`
}

// ParsedTournament is everything extracted from one workbook. Maps are keyed
// by TeamEntry.OrderNum.
type ParsedTournament struct {
	Teams      []TeamEntry              `json:"teams"`
	Qualifying map[int]QualifyingResult `json:"qualifying"`
	Placements map[int]Placement        `json:"placements"`
	// Crossover is true for teams promoted by the play-in sheet and false for
	// teams eliminated by it. Teams that did not play it are absent.
	Crossover map[int]bool        `json:"crossover,omitempty"`
	Manual    map[int]ManualEntry `json:"manual,omitempty"`
}

// IsManual reports whether results came from the manual entry sheet.
func (p *ParsedTournament) IsManual() bool {
	return p.Manual != nil
}

// Tournament describes the upload the results belong to.
type Tournament struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"category"`
	TeamCount int      `json:"team_count"`
}

// TournamentResult is the final per-team output of one parse.
type TournamentResult struct {
	TeamKey        string      `json:"team_key"`
	Team           TeamEntry   `json:"team"`
	Cup            Cup         `json:"cup"`
	CupPosition    CupPosition `json:"cup_position"`
	QualifyingWins int         `json:"qualifying_wins"`
	Points         int         `json:"points"`
	Wins           int         `json:"wins"`
	Losses         int         `json:"losses"`
}
