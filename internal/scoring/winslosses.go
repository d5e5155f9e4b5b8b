package scoring

import "github.com/mauv0809/petanque-ratings/internal/tournament"

// QualifyingRounds is the fixed number of Swiss rounds.
const QualifyingRounds = 5

// WinsLosses derives a team's overall record from its qualifying wins and the
// bracket stage it reached.
func WinsLosses(qualifyingWins int, position tournament.CupPosition) (wins, losses int) {
	wins = qualifyingWins + stageBonus(position)
	losses = max(0, QualifyingRounds-qualifyingWins) + stagePenalty(position)
	return wins, losses
}

func stageBonus(position tournament.CupPosition) int {
	switch position {
	case tournament.PositionWinner:
		return 3
	case tournament.PositionRunnerUp, tournament.PositionThirdPlace:
		return 2
	case tournament.PositionSemiFinal:
		return 1
	}
	return 0
}

func stagePenalty(position tournament.CupPosition) int {
	switch position {
	case tournament.PositionSemiFinal, tournament.PositionThirdPlace, tournament.PositionRunnerUp:
		return 1
	}
	return 0
}
