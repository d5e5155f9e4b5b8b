package parser

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/names"
	"github.com/mauv0809/petanque-ratings/internal/scoring"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

const (
	sheetSwiss       = "Швейцарка"
	sheetGroupMarker = "Группа"
	headerResult     = "Результат"
	headerWins       = "победы"
	swissBye         = "bye"
)

// parseQualifying reads the Swiss sheet when present and the group sheets
// otherwise. With required set, an empty outcome is ErrNoQualifyingData.
func (r *run) parseQualifying(required bool) (map[int]tournament.QualifyingResult, error) {
	results := make(map[int]tournament.QualifyingResult)

	if sheet, ok := r.wb.FindSheet(sheetSwiss); ok {
		if err := r.parseSwiss(sheet, results); err != nil {
			return nil, err
		}
		log.Debug("Read Swiss qualifying", "sheet", sheet, "teams", len(results))
	} else {
		for _, sheet := range r.wb.FindSheetsContaining(sheetGroupMarker) {
			if err := r.parseGroup(sheet, results); err != nil {
				return nil, err
			}
		}
		log.Debug("Read group qualifying", "teams", len(results))
	}

	if len(results) == 0 && required {
		return nil, ErrNoQualifyingData
	}
	return results, nil
}

func (r *run) headers(sheet string, texts ...string) ([]workbook.CellRef, error) {
	refs := make([]workbook.CellRef, 0, len(texts))
	for _, text := range texts {
		ref, ok, err := r.wb.FindHeaderCell(sheet, text)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, structural("header %q not found on sheet %q", text, sheet)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (r *run) record(probs *problems, results map[int]tournament.QualifyingResult, axis string, order int, res tournament.QualifyingResult) {
	if _, dup := results[order]; dup {
		probs.add(axis, fmt.Errorf("%w: %s already has a qualifying result", ErrDuplicateEntry, r.label(order)))
		return
	}
	results[order] = res
}

// parseSwiss reads rows under "Команда" until a blank or the bye row. Every
// team plays the fixed number of Swiss rounds.
func (r *run) parseSwiss(sheet string, results map[int]tournament.QualifyingResult) error {
	refs, err := r.headers(sheet, headerTeam, headerResult)
	if err != nil {
		return err
	}
	teamCol, resultCol := refs[0], refs[1]

	probs := newProblems(sheet)
	for row := teamCol.Row + 1; ; row++ {
		teamAxis := workbook.CellRef{Column: teamCol.Column, Row: row}.Axis()
		value, err := r.wb.Value(sheet, teamAxis)
		if err != nil {
			return err
		}
		if workbook.IsEmpty(value) || names.Normalize(value) == swissBye {
			break
		}

		order, err := r.resolveTeam(value)
		if err != nil {
			probs.add(teamAxis, err)
			continue
		}
		resultAxis := workbook.CellRef{Column: resultCol.Column, Row: row}.Axis()
		raw, err := r.wb.Value(sheet, resultAxis)
		if err != nil {
			return err
		}
		wins, err := parseCount(raw)
		if err == nil && wins > scoring.QualifyingRounds {
			err = fmt.Errorf("%w: %d wins in %d rounds", ErrInvalidValue, wins, scoring.QualifyingRounds)
		}
		if err != nil {
			probs.add(resultAxis, err)
			continue
		}
		r.record(probs, results, teamAxis, order, tournament.QualifyingResult{
			Wins:   wins,
			Losses: scoring.QualifyingRounds - wins,
		})
	}
	return probs.result()
}

// parseGroup reads one round-robin group. The group ends after two
// consecutive empty rows; each team played every other team once.
func (r *run) parseGroup(sheet string, results map[int]tournament.QualifyingResult) error {
	refs, err := r.headers(sheet, headerTeam, headerWins)
	if err != nil {
		return err
	}
	teamCol, winsCol := refs[0], refs[1]

	type groupRow struct {
		axis  string
		order int
		wins  int
	}
	var rows []groupRow
	size := 0

	probs := newProblems(sheet)
	for row, blanks := teamCol.Row+1, 0; blanks < 2; row++ {
		teamAxis := workbook.CellRef{Column: teamCol.Column, Row: row}.Axis()
		value, err := r.wb.Value(sheet, teamAxis)
		if err != nil {
			return err
		}
		if workbook.IsEmpty(value) {
			blanks++
			continue
		}
		blanks = 0
		size++

		order, err := r.resolveTeam(value)
		if err != nil {
			probs.add(teamAxis, err)
			continue
		}
		winsAxis := workbook.CellRef{Column: winsCol.Column, Row: row}.Axis()
		raw, err := r.wb.Value(sheet, winsAxis)
		if err != nil {
			return err
		}
		wins, err := parseCount(raw)
		if err != nil {
			probs.add(winsAxis, err)
			continue
		}
		rows = append(rows, groupRow{axis: teamAxis, order: order, wins: wins})
	}

	for _, gr := range rows {
		losses := size - 1 - gr.wins
		if losses < 0 {
			probs.add(gr.axis, fmt.Errorf("%w: %d wins in a group of %d", ErrInvalidValue, gr.wins, size))
			continue
		}
		r.record(probs, results, gr.axis, gr.order, tournament.QualifyingResult{Wins: gr.wins, Losses: losses})
	}
	return probs.result()
}
