package parser

import (
	"fmt"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

const (
	sheetManual    = "Ручной ввод"
	headerCup      = "Кубок"
	headerPosition = "Позиция"
	headerPoints   = "Очки"
)

// parseManual reads explicit per-team results. Empty cup and position cells
// leave the team unplaced; an empty points cell defers to the points tables.
func (r *run) parseManual(sheet string) (map[int]tournament.ManualEntry, error) {
	refs, err := r.headers(sheet, headerTeam, headerCup, headerPosition, headerPoints)
	if err != nil {
		return nil, err
	}
	teamCol, cupCol, posCol, pointsCol := refs[0], refs[1], refs[2], refs[3]

	entries := make(map[int]tournament.ManualEntry)
	probs := newProblems(sheet)
	for row := teamCol.Row + 1; ; row++ {
		teamAxis := workbook.CellRef{Column: teamCol.Column, Row: row}.Axis()
		value, err := r.wb.Value(sheet, teamAxis)
		if err != nil {
			return nil, err
		}
		if workbook.IsEmpty(value) {
			break
		}

		order, err := r.resolveTeam(value)
		if err != nil {
			probs.add(teamAxis, err)
			continue
		}
		entry := tournament.ManualEntry{OrderNum: order}
		valid := true

		cupAxis := workbook.CellRef{Column: cupCol.Column, Row: row}.Axis()
		rawCup, err := r.wb.Value(sheet, cupAxis)
		if err != nil {
			return nil, err
		}
		if !workbook.IsEmpty(rawCup) {
			if entry.Cup, err = tournament.ParseCup(rawCup); err != nil {
				probs.add(cupAxis, fmt.Errorf("%w: %v", ErrInvalidValue, err))
				valid = false
			}
		}

		posAxis := workbook.CellRef{Column: posCol.Column, Row: row}.Axis()
		rawPos, err := r.wb.Value(sheet, posAxis)
		if err != nil {
			return nil, err
		}
		if !workbook.IsEmpty(rawPos) {
			if entry.Position, err = tournament.ParseCupPosition(rawPos); err != nil {
				probs.add(posAxis, fmt.Errorf("%w: %v", ErrInvalidValue, err))
				valid = false
			}
		}
		if entry.Position != tournament.PositionNone && entry.Cup == tournament.CupNone && valid {
			probs.add(cupAxis, fmt.Errorf("%w: position %s given without a cup", ErrMissingCellValue, entry.Position))
			valid = false
		}

		pointsAxis := workbook.CellRef{Column: pointsCol.Column, Row: row}.Axis()
		rawPoints, err := r.wb.Value(sheet, pointsAxis)
		if err != nil {
			return nil, err
		}
		if !workbook.IsEmpty(rawPoints) {
			points, err := parseCount(rawPoints)
			if err != nil {
				probs.add(pointsAxis, err)
				valid = false
			} else {
				entry.Points = &points
			}
		}

		if !valid {
			continue
		}
		if _, dup := entries[order]; dup {
			probs.add(teamAxis, fmt.Errorf("%w: %s is listed twice", ErrDuplicateEntry, r.label(order)))
			continue
		}
		entries[order] = entry
	}

	if err := probs.result(); err != nil {
		return nil, err
	}
	return entries, nil
}
