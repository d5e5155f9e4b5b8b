package parser

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

const maxTeamSize = 4

// run holds the accumulators of a single Parse call. Teams are a dense slice
// indexed by OrderNum; byPlayer maps a player id to the team holding it.
type run struct {
	ctx      context.Context
	wb       *workbook.Workbook
	resolver PlayerResolver
	teams    []tournament.TeamEntry
	byPlayer map[string]int
}

func newRun(ctx context.Context, wb *workbook.Workbook, resolver PlayerResolver) *run {
	return &run{
		ctx:      ctx,
		wb:       wb,
		resolver: resolver,
		byPlayer: make(map[string]int),
	}
}

// splitNames breaks a cell into its comma separated name fragments.
func splitNames(value string) []string {
	var fragments []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

// resolveTeam finds the registered team named by a cell. Every fragment must
// resolve to a player of the same team.
func (r *run) resolveTeam(value string) (int, error) {
	found := -1
	for _, fragment := range splitNames(value) {
		player, err := r.resolver.Resolve(r.ctx, fragment)
		if err != nil {
			return -1, err
		}
		order, ok := r.byPlayer[player.ID]
		if !ok {
			return -1, fmt.Errorf("%w: %s is not in any registered team", ErrTeamNotFound, player.Name)
		}
		if found >= 0 && found != order {
			return -1, fmt.Errorf("%w: %q names players of different teams", ErrInvalidValue, value)
		}
		found = order
	}
	if found < 0 {
		return -1, fmt.Errorf("%w: %q holds no player name", ErrInvalidValue, value)
	}
	return found, nil
}

func (r *run) label(order int) string {
	return r.teams[order].Label()
}

// parseCount reads a non-negative whole number; "3.0" and "3,0" are accepted.
func parseCount(raw string) (int, error) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil || f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("%w: %q is not a whole number", ErrInvalidValue, raw)
	}
	return int(f), nil
}

// column lists the cell names of one column from row `from` to `to` inclusive.
func column(col string, from, to, step int) []string {
	var cells []string
	for row := from; row <= to; row += step {
		cells = append(cells, workbook.CellRef{Column: col, Row: row}.Axis())
	}
	return cells
}
