package parser

import (
	"fmt"
	"testing"

	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectGrid(t *testing.T) {
	for _, size := range []int{16, 8, 4} {
		t.Run(fmt.Sprintf("%d teams", size), func(t *testing.T) {
			wb := buildWorkbook(t, bracketSheet(t, "Кубок А", size, seq(0, size), -1))
			layout, err := detectGrid(wb, "Кубок А")
			require.NoError(t, err)
			assert.Equal(t, size, layout.Size)
		})
	}

	t.Run("partial anchors", func(t *testing.T) {
		wb := buildWorkbook(t, sheet{name: "Кубок А", cells: map[string]any{"B3": "x", "B9": "y"}})
		_, err := detectGrid(wb, "Кубок А")
		assert.ErrorIs(t, err, ErrUnsupportedGridSize)
	})
}

func TestGridLayouts(t *testing.T) {
	for _, layout := range gridLayouts {
		t.Run(fmt.Sprintf("%d teams", layout.Size), func(t *testing.T) {
			require.NotEmpty(t, layout.Stages)
			assert.Len(t, layout.Stages[0].Cells, layout.Size)

			seen := make(map[string]bool)
			for _, stage := range layout.Stages {
				for _, axis := range stage.Cells {
					assert.False(t, seen[axis], "cell %s used twice", axis)
					seen[axis] = true
				}
			}
			for _, axis := range layout.Anchors {
				assert.True(t, seen[axis], "anchor %s is not a stage cell", axis)
			}
		})
	}
}

func TestParseBracket(t *testing.T) {
	tests := []struct {
		size  int
		third int
		want  map[int]tournament.CupPosition
	}{
		{
			size:  4,
			third: 1,
			want: map[int]tournament.CupPosition{
				0: tournament.PositionWinner,
				1: tournament.PositionThirdPlace,
				2: tournament.PositionRunnerUp,
				3: tournament.PositionSemiFinal,
			},
		},
		{
			size:  8,
			third: -1,
			want: map[int]tournament.CupPosition{
				0: tournament.PositionWinner,
				1: tournament.PositionQuarterFinal,
				2: tournament.PositionSemiFinal,
				3: tournament.PositionQuarterFinal,
				4: tournament.PositionRunnerUp,
				5: tournament.PositionQuarterFinal,
				6: tournament.PositionSemiFinal,
				7: tournament.PositionQuarterFinal,
			},
		},
		{
			size:  16,
			third: 4,
			want: map[int]tournament.CupPosition{
				0:  tournament.PositionWinner,
				1:  tournament.PositionRoundOf16,
				2:  tournament.PositionQuarterFinal,
				3:  tournament.PositionRoundOf16,
				4:  tournament.PositionThirdPlace,
				5:  tournament.PositionRoundOf16,
				6:  tournament.PositionQuarterFinal,
				7:  tournament.PositionRoundOf16,
				8:  tournament.PositionRunnerUp,
				9:  tournament.PositionRoundOf16,
				10: tournament.PositionQuarterFinal,
				11: tournament.PositionRoundOf16,
				12: tournament.PositionSemiFinal,
				13: tournament.PositionRoundOf16,
				14: tournament.PositionQuarterFinal,
				15: tournament.PositionRoundOf16,
			},
		},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d teams", tt.size), func(t *testing.T) {
			p, _ := newTestParser(tt.size)
			wb := buildWorkbook(t, registrationSheet(tt.size), bracketSheet(t, "Кубок А", tt.size, seq(0, tt.size), tt.third))

			r := newRun(ctx, wb, p.resolver)
			require.NoError(t, r.parseRegistration())
			got, err := r.parseBracket("Кубок А")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Every team ends at the best stage among all cells naming it.
func TestParseBracket_KeepsBestStage(t *testing.T) {
	for _, layout := range gridLayouts {
		t.Run(fmt.Sprintf("%d teams", layout.Size), func(t *testing.T) {
			// Reverse order so the winners are the last registered teams.
			teams := make([]int, layout.Size)
			for i := range teams {
				teams[i] = layout.Size - 1 - i
			}
			cup := bracketSheet(t, "Кубок А", layout.Size, teams, teams[1])

			byCaptain := make(map[string]int)
			for n := 0; n < layout.Size; n++ {
				byCaptain[captain(n)] = n
			}
			want := make(map[int]tournament.CupPosition)
			for _, stage := range layout.Stages {
				for _, axis := range stage.Cells {
					value, ok := cup.cells[axis]
					if !ok {
						continue
					}
					n := byCaptain[value.(string)]
					if stage.Position.Better(want[n]) {
						want[n] = stage.Position
					}
				}
			}

			p, _ := newTestParser(layout.Size)
			wb := buildWorkbook(t, registrationSheet(layout.Size), cup)
			r := newRun(ctx, wb, p.resolver)
			require.NoError(t, r.parseRegistration())
			got, err := r.parseBracket("Кубок А")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseBracket_Problems(t *testing.T) {
	p, _ := newTestParser(4, tournament.Player{ID: "x", Name: "Чужой Игрок"})
	cup := bracketSheet(t, "Кубок Б", 4, seq(0, 4), -1)
	delete(cup.cells, "D8")
	cup.cells["B7"] = "Чужой"
	wb := buildWorkbook(t, registrationSheet(4), cup)

	r := newRun(ctx, wb, p.resolver)
	require.NoError(t, r.parseRegistration())
	_, err := r.parseBracket("Кубок Б")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Кубок Б", verr.Sheet)
	assert.Len(t, verr.Problems, 2)
	assert.ErrorIs(t, err, ErrMissingCellValue)
	assert.ErrorIs(t, err, ErrTeamNotFound)
	assert.Equal(t, []string{
		"Кубок Б!B7: team not found: Чужой Игрок is not in any registered team",
		"Кубок Б!D8: missing cell value: RUNNER_UP cell is empty",
	}, Messages(err))
}
