package results

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/scoring"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// Outcome is the scored result set of one parse. Warnings counts the teams
// whose bracket position had no points table entry.
type Outcome struct {
	Results  []tournament.TournamentResult
	Warnings int
}

// Calculate scores every registered team in registration order.
func Calculate(category tournament.Category, parsed *tournament.ParsedTournament) Outcome {
	total := len(parsed.Teams)
	out := Outcome{Results: make([]tournament.TournamentResult, 0, total)}

	for _, team := range parsed.Teams {
		order := team.OrderNum
		qualifying := parsed.Qualifying[order]
		res := tournament.TournamentResult{
			TeamKey:        team.Key(),
			Team:           team,
			QualifyingWins: qualifying.Wins,
		}

		placement, placed := parsed.Placements[order]
		if placed {
			res.Cup = placement.Cup
			res.CupPosition = placement.Position
		}

		manual, hasManual := parsed.Manual[order]
		switch {
		case hasManual && manual.Points != nil:
			res.Points = *manual.Points
		case placed:
			qualifyingPoints := 0
			if placement.Cup == tournament.CupC {
				qualifyingPoints = scoring.QualifyingStagePoints(category, qualifying.Wins)
			}
			points, ok := scoring.Lookup(category, placement.Cup, placement.Position, total, qualifyingPoints)
			if !ok {
				out.Warnings++
				log.Warn("No points defined for team position",
					"team", team.Label(),
					"cup", placement.Cup,
					"position", placement.Position,
					"range", scoring.RangeFor(total),
				)
			}
			res.Points = points
		}

		res.Wins, res.Losses = scoring.WinsLosses(qualifying.Wins, res.CupPosition)
		if promoted, played := parsed.Crossover[order]; played {
			if promoted {
				res.Wins++
			} else {
				res.Losses++
			}
		}
		out.Results = append(out.Results, res)
	}
	return out
}
