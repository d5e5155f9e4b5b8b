package parser

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

var cupSheetPattern = regexp.MustCompile(`^кубок [aаbбcс]$`)

type stageCells struct {
	Position tournament.CupPosition
	Cells    []string
}

// gridLayout is the fixed cell layout of one bracket size. Anchors must all be
// occupied for a sheet to be recognised as that size.
type gridLayout struct {
	Size    int
	Anchors []string
	Stages  []stageCells
}

// gridLayouts is ordered largest first; the first layout whose anchors are all
// occupied wins.
var gridLayouts = []gridLayout{
	{
		Size:    16,
		Anchors: []string{"B3", "B33", "J18"},
		Stages: []stageCells{
			{tournament.PositionRoundOf16, column("B", 3, 33, 2)},
			{tournament.PositionQuarterFinal, column("D", 4, 32, 4)},
			{tournament.PositionSemiFinal, []string{"F6", "F14", "F22", "F30"}},
			{tournament.PositionRunnerUp, []string{"H10", "H26"}},
			{tournament.PositionWinner, []string{"J18"}},
			{tournament.PositionThirdPlace, []string{"J28"}},
		},
	},
	{
		Size:    8,
		Anchors: []string{"B3", "B17", "H10"},
		Stages: []stageCells{
			{tournament.PositionQuarterFinal, column("B", 3, 17, 2)},
			{tournament.PositionSemiFinal, []string{"D4", "D8", "D12", "D16"}},
			{tournament.PositionRunnerUp, []string{"F6", "F14"}},
			{tournament.PositionWinner, []string{"H10"}},
			{tournament.PositionThirdPlace, []string{"H14"}},
		},
	},
	{
		Size:    4,
		Anchors: []string{"B3", "B9", "F6"},
		Stages: []stageCells{
			{tournament.PositionSemiFinal, []string{"B3", "B5", "B7", "B9"}},
			{tournament.PositionRunnerUp, []string{"D4", "D8"}},
			{tournament.PositionWinner, []string{"F6"}},
			{tournament.PositionThirdPlace, []string{"F9"}},
		},
	},
}

func detectGrid(wb *workbook.Workbook, sheet string) (*gridLayout, error) {
	for i := range gridLayouts {
		layout := &gridLayouts[i]
		occupied := true
		for _, axis := range layout.Anchors {
			value, err := wb.Value(sheet, axis)
			if err != nil {
				return nil, err
			}
			if workbook.IsEmpty(value) {
				occupied = false
				break
			}
		}
		if occupied {
			return layout, nil
		}
	}
	return nil, fmt.Errorf("%w: sheet %q matches no 16, 8 or 4 team layout", ErrUnsupportedGridSize, sheet)
}

// parseBracket decodes one cup sheet into the best stage each team reached.
// A team appears in every round it played, so lower stages are overridden.
func (r *run) parseBracket(sheet string) (map[int]tournament.CupPosition, error) {
	layout, err := detectGrid(r.wb, sheet)
	if err != nil {
		return nil, err
	}
	log.Debug("Detected bracket grid", "sheet", sheet, "size", layout.Size)

	best := make(map[int]tournament.CupPosition)
	probs := newProblems(sheet)
	for _, stage := range layout.Stages {
		for _, axis := range stage.Cells {
			value, err := r.wb.Value(sheet, axis)
			if err != nil {
				return nil, err
			}
			if workbook.IsEmpty(value) {
				if stage.Position == tournament.PositionThirdPlace {
					continue
				}
				probs.add(axis, fmt.Errorf("%w: %s cell is empty", ErrMissingCellValue, stage.Position))
				continue
			}
			order, err := r.resolveTeam(value)
			if err != nil {
				probs.add(axis, err)
				continue
			}
			if current, seen := best[order]; !seen || stage.Position.Better(current) {
				best[order] = stage.Position
			}
		}
	}
	if err := probs.result(); err != nil {
		return nil, err
	}
	return best, nil
}

// parseCups decodes every cup sheet. A team may only be placed in one cup.
func (r *run) parseCups() (map[int]tournament.Placement, error) {
	sheets := r.wb.FindSheetsMatching(cupSheetPattern)
	if len(sheets) == 0 {
		return nil, structural("no cup sheet found")
	}

	placements := make(map[int]tournament.Placement)
	for _, sheet := range sheets {
		cup, err := tournament.ParseCup(strings.TrimPrefix(names.Normalize(sheet), "кубок "))
		if err != nil {
			return nil, structural("sheet %q: %v", sheet, err)
		}
		positions, err := r.parseBracket(sheet)
		if err != nil {
			return nil, err
		}

		probs := newProblems(sheet)
		for _, order := range slices.Sorted(maps.Keys(positions)) {
			position := positions[order]
			existing, placed := placements[order]
			switch {
			case !placed:
				placements[order] = tournament.Placement{Cup: cup, Position: position}
			case existing.Cup != cup:
				probs.add(r.label(order), fmt.Errorf("%w: team is already placed in cup %s", ErrDuplicateEntry, existing.Cup))
			case position.Better(existing.Position):
				placements[order] = tournament.Placement{Cup: cup, Position: position}
			}
		}
		if err := probs.result(); err != nil {
			return nil, err
		}
		log.Info("Decoded cup", "sheet", sheet, "cup", cup, "teams", len(positions))
	}
	return placements, nil
}
