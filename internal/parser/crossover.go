package parser

import (
	"fmt"
	"regexp"

	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

var (
	crossoverSheetPattern = regexp.MustCompile(`стык [aа][bб]`)

	crossoverParticipants = column("B", 3, 33, 2)
	crossoverWinners      = column("D", 4, 32, 4)
)

// parseCrossover reads the optional play-in sheet between cups A and B.
// Participants are marked eliminated first, then winners promoted, so a team
// in both lists ends up promoted. A nil map means the sheet is absent.
func (r *run) parseCrossover() (map[int]bool, error) {
	sheet, ok := r.wb.FindSheetMatching(crossoverSheetPattern)
	if !ok {
		return nil, nil
	}

	promoted := make(map[int]bool)
	probs := newProblems(sheet)
	mark := func(cells []string, outcome bool) error {
		for _, axis := range cells {
			value, err := r.wb.Value(sheet, axis)
			if err != nil {
				return err
			}
			if workbook.IsEmpty(value) {
				probs.add(axis, fmt.Errorf("%w: crossover cell is empty", ErrMissingCellValue))
				continue
			}
			order, err := r.resolveTeam(value)
			if err != nil {
				probs.add(axis, err)
				continue
			}
			promoted[order] = outcome
		}
		return nil
	}

	if err := mark(crossoverParticipants, false); err != nil {
		return nil, err
	}
	if err := mark(crossoverWinners, true); err != nil {
		return nil, err
	}
	if err := probs.result(); err != nil {
		return nil, err
	}
	return promoted, nil
}
