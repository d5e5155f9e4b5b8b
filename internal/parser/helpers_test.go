package parser

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/mauv0809/petanque-ratings/internal/roster"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type sheet struct {
	name  string
	cells map[string]any
}

func buildWorkbook(t *testing.T, sheets ...sheet) *workbook.Workbook {
	t.Helper()
	f := excelize.NewFile()
	for i, s := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", s.name))
		} else {
			_, err := f.NewSheet(s.name)
			require.NoError(t, err)
		}
		for axis, value := range s.cells {
			require.NoError(t, f.SetCellValue(s.name, axis, value))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	wb, err := workbook.Open(buf.Bytes())
	require.NoError(t, err)
	t.Cleanup(func() { wb.Close() })
	return wb
}

// testPlayer i has the unique first token "Игрок<i>".
func testPlayer(i int) tournament.Player {
	return tournament.Player{ID: fmt.Sprintf("p%02d", i), Name: fmt.Sprintf("Игрок%02d Тестов", i)}
}

// teamName is the registration cell of team n: two players per team.
func teamName(n int) string {
	return fmt.Sprintf("Игрок%02d, Игрок%02d", 2*n+1, 2*n+2)
}

// captain is how bracket sheets refer to team n.
func captain(n int) string {
	return fmt.Sprintf("Игрок%02d", 2*n+1)
}

func newTestParser(teams int, extra ...tournament.Player) (*Parser, *roster.MockStore) {
	players := make([]tournament.Player, 0, 2*teams+len(extra))
	for i := 1; i <= 2*teams; i++ {
		players = append(players, testPlayer(i))
	}
	store := roster.NewMock(append(players, extra...)...)
	return New(roster.NewResolver(store)), store
}

func registrationSheet(teams int) sheet {
	cells := map[string]any{"A1": "Регистрация команд", "B2": "Команда"}
	for n := 0; n < teams; n++ {
		cells[fmt.Sprintf("B%d", n+3)] = teamName(n)
	}
	return sheet{name: "Регистрация", cells: cells}
}

// swissSheet gives team n wins[n] wins.
func swissSheet(wins ...int) sheet {
	cells := map[string]any{"A1": "Команда", "C1": "Результат"}
	for n, w := range wins {
		cells[fmt.Sprintf("A%d", n+2)] = captain(n)
		cells[fmt.Sprintf("C%d", n+2)] = w
	}
	return sheet{name: "Швейцарка", cells: cells}
}

// bracketSheet fills the layout for the given size. The first listed team of
// each pair always wins; third is written into the third place cell when set.
func bracketSheet(t *testing.T, name string, size int, teams []int, third int) sheet {
	t.Helper()
	var layout *gridLayout
	for i := range gridLayouts {
		if gridLayouts[i].Size == size {
			layout = &gridLayouts[i]
		}
	}
	require.NotNil(t, layout)
	require.Len(t, teams, size)

	cells := make(map[string]any)
	current := teams
	for _, stage := range layout.Stages {
		if stage.Position == tournament.PositionThirdPlace {
			if third >= 0 {
				cells[stage.Cells[0]] = captain(third)
			}
			continue
		}
		if len(stage.Cells) < len(current) {
			next := make([]int, len(stage.Cells))
			for k := range next {
				next[k] = current[2*k]
			}
			current = next
		}
		for i, axis := range stage.Cells {
			cells[axis] = captain(current[i])
		}
	}
	return sheet{name: name, cells: cells}
}

func seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}

var ctx = context.Background()
