package scoring

import "github.com/mauv0809/petanque-ratings/internal/tournament"

// TeamCountRange buckets the number of registered teams.
type TeamCountRange string

const (
	Range8To12  TeamCountRange = "8-12"
	Range13To18 TeamCountRange = "13-18"
	Range19To24 TeamCountRange = "19-24"
	Range25To30 TeamCountRange = "25-30"
	Range31To36 TeamCountRange = "31-36"
	RangeOver36 TeamCountRange = "36+"
)

// RangeFor maps a team count onto its range. Upper bounds are inclusive.
func RangeFor(totalTeams int) TeamCountRange {
	switch {
	case totalTeams <= 12:
		return Range8To12
	case totalTeams <= 18:
		return Range13To18
	case totalTeams <= 24:
		return Range19To24
	case totalTeams <= 30:
		return Range25To30
	case totalTeams <= 36:
		return Range31To36
	}
	return RangeOver36
}

type tableKey struct {
	category tournament.Category
	cup      tournament.Cup
	teams    TeamCountRange
}

type pointsTable map[tournament.CupPosition]int

// row builds a table from WINNER/RUNNER_UP/SEMI_FINAL/QUARTER_FINAL points.
// Zero means the stage is not rewarded at this size.
func row(winner, runnerUp, semiFinal, quarterFinal int) pointsTable {
	table := pointsTable{}
	for pos, pts := range map[tournament.CupPosition]int{
		tournament.PositionWinner:       winner,
		tournament.PositionRunnerUp:     runnerUp,
		tournament.PositionSemiFinal:    semiFinal,
		tournament.PositionQuarterFinal: quarterFinal,
	} {
		if pts > 0 {
			table[pos] = pts
		}
	}
	return table
}

// Federation points tables. Cup B starts at 13 teams and cup C is scored from
// the qualifying stage, so neither has entries outside these rows.
var tables = map[tableKey]pointsTable{
	{tournament.CategoryFederal, tournament.CupA, Range8To12}:  row(10, 8, 6, 5),
	{tournament.CategoryFederal, tournament.CupA, Range13To18}: row(11, 9, 7, 6),
	{tournament.CategoryFederal, tournament.CupA, Range19To24}: row(12, 10, 8, 7),
	{tournament.CategoryFederal, tournament.CupA, Range25To30}: row(13, 11, 9, 8),
	{tournament.CategoryFederal, tournament.CupA, Range31To36}: row(14, 12, 10, 9),
	{tournament.CategoryFederal, tournament.CupA, RangeOver36}: row(16, 14, 12, 11),

	{tournament.CategoryFederal, tournament.CupB, Range13To18}: row(5, 4, 0, 0),
	{tournament.CategoryFederal, tournament.CupB, Range19To24}: row(6, 5, 4, 0),
	{tournament.CategoryFederal, tournament.CupB, Range25To30}: row(7, 6, 5, 4),
	{tournament.CategoryFederal, tournament.CupB, Range31To36}: row(8, 7, 6, 5),
	{tournament.CategoryFederal, tournament.CupB, RangeOver36}: row(9, 8, 7, 6),

	{tournament.CategoryRegional, tournament.CupA, Range8To12}:  row(6, 5, 4, 3),
	{tournament.CategoryRegional, tournament.CupA, Range13To18}: row(7, 6, 5, 4),
	{tournament.CategoryRegional, tournament.CupA, Range19To24}: row(8, 7, 6, 5),
	{tournament.CategoryRegional, tournament.CupA, Range25To30}: row(9, 8, 7, 6),
	{tournament.CategoryRegional, tournament.CupA, Range31To36}: row(10, 9, 8, 7),
	{tournament.CategoryRegional, tournament.CupA, RangeOver36}: row(12, 11, 10, 9),

	{tournament.CategoryRegional, tournament.CupB, Range13To18}: row(4, 3, 0, 0),
	{tournament.CategoryRegional, tournament.CupB, Range19To24}: row(5, 4, 3, 0),
	{tournament.CategoryRegional, tournament.CupB, Range25To30}: row(6, 5, 4, 3),
	{tournament.CategoryRegional, tournament.CupB, Range31To36}: row(6, 5, 4, 3),
	{tournament.CategoryRegional, tournament.CupB, RangeOver36}: row(7, 6, 5, 4),
}
