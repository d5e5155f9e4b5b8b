package parser

import (
	"fmt"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

const (
	sheetRegistration = "Регистрация"
	headerTeam        = "Команда"
)

// parseRegistration reads the ordered team list. Teams without a single
// resolved player are skipped and do not consume an order number.
func (r *run) parseRegistration() error {
	sheet, ok := r.wb.FindSheet(sheetRegistration)
	if !ok {
		return structural("registration sheet %q not found", sheetRegistration)
	}
	header, ok, err := r.wb.FindHeaderCell(sheet, headerTeam)
	if err != nil {
		return err
	}
	if !ok {
		return structural("header %q not found on sheet %q", headerTeam, sheet)
	}

	probs := newProblems(sheet)
	for row := header.Row + 1; ; row++ {
		axis := workbook.CellRef{Column: header.Column, Row: row}.Axis()
		value, err := r.wb.Value(sheet, axis)
		if err != nil {
			return err
		}
		if workbook.IsEmpty(value) {
			break
		}

		var players []tournament.Player
		for _, fragment := range splitNames(value) {
			player, err := r.resolver.Resolve(r.ctx, fragment)
			if err != nil {
				probs.add(axis, err)
				continue
			}
			if owner, taken := r.byPlayer[player.ID]; taken {
				probs.add(axis, fmt.Errorf("%w: %s is already registered with %s", ErrDuplicateEntry, player.Name, r.label(owner)))
				continue
			}
			if (tournament.TeamEntry{Players: players}).HasPlayer(player.ID) {
				probs.add(axis, fmt.Errorf("%w: %s is listed twice", ErrDuplicateEntry, player.Name))
				continue
			}
			players = append(players, player)
		}
		if len(players) == 0 {
			continue
		}
		if len(players) > maxTeamSize {
			probs.add(axis, fmt.Errorf("%w: team has %d players, at most %d allowed", ErrInvalidValue, len(players), maxTeamSize))
			continue
		}

		order := len(r.teams)
		r.teams = append(r.teams, tournament.TeamEntry{OrderNum: order, Players: players})
		for _, p := range players {
			r.byPlayer[p.ID] = order
		}
	}

	if err := probs.result(); err != nil {
		return err
	}
	if len(r.teams) == 0 {
		return structural("sheet %q lists no teams", sheet)
	}
	return nil
}
