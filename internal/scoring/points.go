package scoring

import (
	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
)

// cupCBonus is added to a cup C team's qualifying-stage points.
func cupCBonus(position tournament.CupPosition) int {
	switch position {
	case tournament.PositionWinner, tournament.PositionRunnerUp:
		return 2
	case tournament.PositionSemiFinal:
		return 1
	}
	return 0
}

// Lookup returns the rating points for a bracket position. ok is false when
// the category/cup/team-count combination or the position has no table
// entry; points are then 0.
func Lookup(category tournament.Category, cup tournament.Cup, position tournament.CupPosition, totalTeams, qualifyingPoints int) (points int, ok bool) {
	if cup == tournament.CupC {
		return qualifyingPoints + cupCBonus(position), true
	}

	table, found := tables[tableKey{category: category, cup: cup, teams: RangeFor(totalTeams)}]
	if !found {
		return 0, false
	}

	if position == tournament.PositionThirdPlace {
		semiFinal, found := table[tournament.PositionSemiFinal]
		if !found {
			return 0, false
		}
		if category == tournament.CategoryFederal && cup == tournament.CupA {
			return semiFinal + 1, true
		}
		return semiFinal, true
	}

	points, found = table[position]
	return points, found
}

// Points is Lookup for callers that only need the number. Unmapped lookups
// are logged and score 0.
func Points(category tournament.Category, cup tournament.Cup, position tournament.CupPosition, totalTeams, qualifyingPoints int) int {
	points, ok := Lookup(category, cup, position, totalTeams, qualifyingPoints)
	if !ok {
		log.Warn("No points defined for bracket position",
			"category", category,
			"cup", cup,
			"position", position,
			"total_teams", totalTeams,
			"range", RangeFor(totalTeams),
		)
	}
	return points
}

// QualifyingStagePoints scores the Swiss or group stage by number of wins.
func QualifyingStagePoints(category tournament.Category, wins int) int {
	switch {
	case wins <= 0:
		return 0
	case wins <= 2:
		if category == tournament.CategoryFederal {
			return 2
		}
		return 1
	}
	if category == tournament.CategoryFederal {
		return 3
	}
	return 2
}
