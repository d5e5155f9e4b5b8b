package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crossoverSheet(participants, winners []int) sheet {
	cells := make(map[string]any)
	for i, n := range participants {
		cells[crossoverParticipants[i]] = captain(n)
	}
	for i, n := range winners {
		cells[crossoverWinners[i]] = captain(n)
	}
	return sheet{name: "Стык аб", cells: cells}
}

func TestParseCrossover(t *testing.T) {
	t.Run("absent sheet", func(t *testing.T) {
		p, _ := newTestParser(2)
		wb := buildWorkbook(t, registrationSheet(2))
		r := newRun(ctx, wb, p.resolver)
		require.NoError(t, r.parseRegistration())

		got, err := r.parseCrossover()
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("winners are promoted after participants", func(t *testing.T) {
		p, _ := newTestParser(16)
		winners := []int{15, 13, 11, 9, 7, 5, 3, 1}
		wb := buildWorkbook(t, registrationSheet(16), crossoverSheet(seq(0, 16), winners))
		r := newRun(ctx, wb, p.resolver)
		require.NoError(t, r.parseRegistration())

		got, err := r.parseCrossover()
		require.NoError(t, err)
		require.Len(t, got, 16)
		for n := 0; n < 16; n++ {
			assert.Equal(t, n%2 == 1, got[n], "team %d", n)
		}
	})

	t.Run("empty and unknown cells", func(t *testing.T) {
		p, _ := newTestParser(16)
		cs := crossoverSheet(seq(0, 16), []int{0, 2, 4, 6, 8, 10, 12})
		cs.cells["B5"] = "Никто"
		wb := buildWorkbook(t, registrationSheet(16), cs)
		r := newRun(ctx, wb, p.resolver)
		require.NoError(t, r.parseRegistration())

		_, err := r.parseCrossover()
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Стык аб", verr.Sheet)
		assert.Len(t, verr.Problems, 2)
		assert.ErrorIs(t, err, ErrMissingCellValue)
	})
}
