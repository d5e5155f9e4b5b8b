package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCup(t *testing.T) {
	tests := []struct {
		raw     string
		want    Cup
		wantErr bool
	}{
		{"A", CupA, false},
		{" а ", CupA, false},
		{"Б", CupB, false},
		{"b", CupB, false},
		{"С", CupC, false},
		{"c", CupC, false},
		{"D", CupNone, true},
		{"", CupNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCup(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCupPosition(t *testing.T) {
	tests := []struct {
		raw     string
		want    CupPosition
		wantErr bool
	}{
		{"1", PositionWinner, false},
		{"2", PositionRunnerUp, false},
		{"3", PositionThirdPlace, false},
		{"1/2", PositionSemiFinal, false},
		{"1/4", PositionQuarterFinal, false},
		{"1/8", PositionRoundOf16, false},
		{"winner", PositionWinner, false},
		{"quarter final", PositionQuarterFinal, false},
		{"ROUND_OF_16", PositionRoundOf16, false},
		{"5", PositionNone, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseCupPosition(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCupPositionBetter(t *testing.T) {
	assert.True(t, PositionWinner.Better(PositionRunnerUp))
	assert.True(t, PositionThirdPlace.Better(PositionSemiFinal))
	assert.True(t, PositionRoundOf16.Better(PositionNone))
	assert.False(t, PositionQuarterFinal.Better(PositionQuarterFinal))
	assert.False(t, CupPosition("BOGUS").Better(PositionNone))
}

func TestTeamEntryKey(t *testing.T) {
	a := TeamEntry{OrderNum: 0, Players: []Player{{ID: "p2", Name: "Петров"}, {ID: "p1", Name: "Иванов"}}}
	b := TeamEntry{OrderNum: 5, Players: []Player{{ID: "p1"}, {ID: "p2"}}}

	assert.Equal(t, "p1:p2", a.Key())
	assert.True(t, a.SameTeam(b))
	assert.True(t, a.HasPlayer("p2"))
	assert.False(t, a.HasPlayer("p3"))
	assert.Equal(t, "Петров, Иванов", a.Label())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryFederal.Valid())
	assert.True(t, CategoryRegional.Valid())
	assert.False(t, Category(0).Valid())
	assert.False(t, Category(3).Valid())
}
