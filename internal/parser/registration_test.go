package parser

import (
	"testing"

	"github.com/mauv0809/petanque-ratings/internal/roster"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistration(t *testing.T) {
	t.Run("reads teams until the first empty cell", func(t *testing.T) {
		p, _ := newTestParser(4)
		wb := buildWorkbook(t, sheet{name: "регистрация", cells: map[string]any{
			"C5":  "Команда",
			"C6":  teamName(0),
			"C7":  " , ",
			"C8":  "Игрок05 (Москва), игрок06.",
			"C9":  "",
			"C10": teamName(3),
		}})

		r := newRun(ctx, wb, p.resolver)
		require.NoError(t, r.parseRegistration())
		require.Len(t, r.teams, 2)
		assert.Equal(t, 0, r.teams[0].OrderNum)
		assert.Equal(t, 1, r.teams[1].OrderNum)
		assert.Equal(t, []string{"p05", "p06"}, r.teams[1].PlayerIDs())
		assert.Equal(t, 1, r.byPlayer["p06"])
	})

	t.Run("accumulates every problem of the sheet", func(t *testing.T) {
		p, _ := newTestParser(2,
			tournament.Player{ID: "s1", Name: "Смирнов Олег"},
			tournament.Player{ID: "s2", Name: "Смирнов Иван"},
		)
		wb := buildWorkbook(t, sheet{name: "Регистрация", cells: map[string]any{
			"A1": "Команда",
			"A2": teamName(0),
			"A3": "Неизвестный, Игрок03",
			"A4": "Смирнов",
			"A5": "Игрок02, Игрок04",
			"A6": "Олег, Олег",
		}})

		r := newRun(ctx, wb, p.resolver)
		err := r.parseRegistration()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Регистрация", verr.Sheet)
		assert.Len(t, verr.Problems, 4)
		assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
		assert.ErrorIs(t, err, roster.ErrPlayerAmbiguous)
		assert.ErrorIs(t, err, ErrDuplicateEntry)

		msgs := Messages(err)
		assert.Contains(t, msgs[0], "Регистрация!A3")
		assert.Contains(t, msgs[1], "Смирнов Олег; Смирнов Иван")
		assert.Contains(t, msgs[2], "Игрок02 Тестов is already registered")
		assert.Contains(t, msgs[3], "listed twice")
	})

	t.Run("too many players", func(t *testing.T) {
		p, _ := newTestParser(3)
		wb := buildWorkbook(t, sheet{name: "Регистрация", cells: map[string]any{
			"A1": "Команда",
			"A2": "Игрок01, Игрок02, Игрок03, Игрок04, Игрок05",
		}})

		r := newRun(ctx, wb, p.resolver)
		assert.ErrorIs(t, r.parseRegistration(), ErrInvalidValue)
	})

	t.Run("no teams at all", func(t *testing.T) {
		p, _ := newTestParser(1)
		wb := buildWorkbook(t, sheet{name: "Регистрация", cells: map[string]any{"A1": "Команда"}})

		r := newRun(ctx, wb, p.resolver)
		assert.ErrorIs(t, r.parseRegistration(), ErrStructural)
	})

	t.Run("re-parsing yields identical teams", func(t *testing.T) {
		p, _ := newTestParser(6)
		wb := buildWorkbook(t, registrationSheet(6))

		first := newRun(ctx, wb, p.resolver)
		require.NoError(t, first.parseRegistration())
		second := newRun(ctx, wb, p.resolver)
		require.NoError(t, second.parseRegistration())
		assert.Equal(t, first.teams, second.teams)
	})
}

func TestResolveTeam(t *testing.T) {
	p, _ := newTestParser(2, tournament.Player{ID: "x", Name: "Чужой Игрок"})
	wb := buildWorkbook(t, registrationSheet(2))
	r := newRun(ctx, wb, p.resolver)
	require.NoError(t, r.parseRegistration())

	tests := []struct {
		name    string
		value   string
		want    int
		wantErr error
	}{
		{"single player", "Игрок03", 1, nil},
		{"both players", "Игрок04, Игрок03", 1, nil},
		{"unregistered player", "Чужой", -1, ErrTeamNotFound},
		{"unknown player", "Никто", -1, roster.ErrPlayerNotFound},
		{"players of two teams", "Игрок01, Игрок03", -1, ErrInvalidValue},
		{"only separators", ",", -1, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.resolveTeam(tt.value)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCount(t *testing.T) {
	for raw, want := range map[string]int{"0": 0, "3": 3, " 4 ": 4, "2.0": 2, "5,0": 5} {
		got, err := parseCount(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "-1", "2.5", "три"} {
		_, err := parseCount(raw)
		assert.ErrorIs(t, err, ErrInvalidValue, raw)
	}
}
