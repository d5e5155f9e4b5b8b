package processor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mauv0809/petanque-ratings/internal/metrics"
	"github.com/mauv0809/petanque-ratings/internal/notifier"
	"github.com/mauv0809/petanque-ratings/internal/parser"
	"github.com/mauv0809/petanque-ratings/internal/pubsub"
	"github.com/mauv0809/petanque-ratings/internal/results"
	"github.com/mauv0809/petanque-ratings/internal/roster"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fourTeamWorkbook registers four two-player teams, gives them Swiss results
// and plays a four-team cup A where team 1 beats team 3 in the final.
func fourTeamWorkbook(t *testing.T, registration map[string]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", "Регистрация"))
	for axis, value := range registration {
		require.NoError(t, f.SetCellValue("Регистрация", axis, value))
	}

	_, err := f.NewSheet("Швейцарка")
	require.NoError(t, err)
	swiss := map[string]any{
		"A1": "Команда", "B1": "Результат",
		"A2": "Иванов", "B2": 5,
		"A3": "Петров", "B3": 3,
		"A4": "Сидоров", "B4": 2,
		"A5": "Козлов", "B5": 0,
	}
	for axis, value := range swiss {
		require.NoError(t, f.SetCellValue("Швейцарка", axis, value))
	}

	_, err = f.NewSheet("Кубок А")
	require.NoError(t, err)
	cup := map[string]string{
		"B3": "Иванов", "B5": "Петров", "B7": "Сидоров", "B9": "Козлов",
		"D4": "Иванов", "D8": "Сидоров",
		"F6": "Иванов",
		"F9": "Петров",
	}
	for axis, value := range cup {
		require.NoError(t, f.SetCellValue("Кубок А", axis, value))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func validRegistration() map[string]string {
	return map[string]string{
		"A1": "Команда",
		"A2": "Иванов, Смирнов",
		"A3": "Петров, Волков",
		"A4": "Сидоров, Морозов",
		"A5": "Козлов, Попов",
	}
}

func testRoster() *roster.MockStore {
	var players []tournament.Player
	for i, name := range []string{"Иванов", "Смирнов", "Петров", "Волков", "Сидоров", "Морозов", "Козлов", "Попов"} {
		players = append(players, tournament.Player{ID: fmt.Sprintf("p%d", i+1), Name: name + " Игорь"})
	}
	return roster.NewMock(players...)
}

type deps struct {
	store    *results.MockStore
	notifier *notifier.Mock
	metrics  *metrics.Mock
	pubsub   *pubsub.MockPubSubClient
}

func setup() (*Processor, deps) {
	d := deps{
		store:    results.NewMock(),
		notifier: notifier.NewMock(),
		metrics:  metrics.NewMock(),
		pubsub:   pubsub.NewMock("TEST"),
	}
	p := New(parser.New(roster.NewResolver(testRoster())), d.store, d.notifier, d.metrics, d.pubsub)
	return p, d
}

func TestProcessor_ImportResults(t *testing.T) {
	t.Run("valid workbook is scored, stored, published and announced", func(t *testing.T) {
		// Setup
		p, d := setup()
		req := ImportRequest{
			TournamentID: "t1",
			Name:         "Кубок города",
			Category:     tournament.CategoryFederal,
			Workbook:     fourTeamWorkbook(t, validRegistration()),
		}

		// Execute
		summary, err := p.ImportResults(context.Background(), req)

		// Assert
		require.NoError(t, err)
		require.Len(t, summary.Results, 4)
		assert.Equal(t, 4, summary.Tournament.TeamCount)
		assert.False(t, summary.DryRun)

		winner := summary.Results[0]
		assert.Equal(t, tournament.PositionWinner, winner.CupPosition)
		assert.Equal(t, 10, winner.Points, "federal cup A winner, 8-12 teams")
		assert.Equal(t, 8, winner.Wins)

		third := summary.Results[1]
		assert.Equal(t, tournament.PositionThirdPlace, third.CupPosition)
		assert.Equal(t, 7, third.Points, "semi-final points plus one")

		assert.Equal(t, tournament.PositionRunnerUp, summary.Results[2].CupPosition)
		assert.Equal(t, tournament.PositionSemiFinal, summary.Results[3].CupPosition)

		require.Len(t, d.store.ReplaceResultsCalls, 1, "Results should be stored once")
		assert.Equal(t, "t1", d.store.ReplaceResultsCalls[0].Tournament.ID)
		events := d.pubsub.Published()
		require.Len(t, events, 1, "An event should be published")
		assert.Equal(t, "t1", events[0].TournamentID)
		assert.Len(t, events[0].Results, 4)

		require.Len(t, d.notifier.SendImportSummaryCalls, 1, "A summary should be sent")
		assert.Empty(t, d.notifier.SendImportFailureCalls)
		assert.Equal(t, 1, d.metrics.UploadsProcessed())
		assert.Equal(t, 4, d.metrics.ResultsProduced())
		assert.Len(t, d.metrics.ParseDurations(), 1)
	})

	t.Run("dry run stores and publishes nothing", func(t *testing.T) {
		p, d := setup()
		summary, err := p.ImportResults(context.Background(), ImportRequest{
			Name:     "Черновик",
			Category: tournament.CategoryRegional,
			Workbook: fourTeamWorkbook(t, validRegistration()),
			DryRun:   true,
		})

		require.NoError(t, err)
		assert.True(t, summary.DryRun)
		assert.NotEmpty(t, summary.Tournament.ID, "A tournament id should be generated")
		assert.Equal(t, 6, summary.Results[0].Points, "regional cup A winner, 8-12 teams")
		assert.Empty(t, d.store.ReplaceResultsCalls)
		assert.Empty(t, d.pubsub.SendMessageCalls)
		require.Len(t, d.notifier.SendImportSummaryCalls, 1)
		assert.True(t, d.notifier.SendImportSummaryCalls[0].DryRun)
	})

	t.Run("invalid names reject the whole upload", func(t *testing.T) {
		p, d := setup()
		registration := validRegistration()
		registration["A3"] = "Петров, Неизвестный"
		registration["A6"] = "Никто"

		_, err := p.ImportResults(context.Background(), ImportRequest{
			Name:     "Кубок города",
			Category: tournament.CategoryFederal,
			Workbook: fourTeamWorkbook(t, registration),
		})

		var verr *parser.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Problems, 2)
		assert.ErrorIs(t, err, roster.ErrPlayerNotFound)

		assert.Empty(t, d.store.ReplaceResultsCalls, "Nothing should be stored")
		assert.Empty(t, d.pubsub.SendMessageCalls)
		require.Len(t, d.notifier.SendImportFailureCalls, 1)
		assert.Len(t, d.notifier.SendImportFailureCalls[0].Problems, 2)
		assert.Equal(t, 1, d.metrics.UploadsFailed())
		assert.Equal(t, 0, d.metrics.UploadsProcessed())
	})

	t.Run("invalid category", func(t *testing.T) {
		p, d := setup()
		_, err := p.ImportResults(context.Background(), ImportRequest{Category: 3, Workbook: []byte("x")})
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.Empty(t, d.notifier.SendImportFailureCalls)
		assert.Equal(t, 1, d.metrics.UploadsFailed())
	})

	t.Run("not a workbook", func(t *testing.T) {
		p, d := setup()
		_, err := p.ImportResults(context.Background(), ImportRequest{Category: 1, Workbook: []byte("name,points")})
		require.Error(t, err)
		require.Len(t, d.notifier.SendImportFailureCalls, 1)
	})

	t.Run("storage failure is reported", func(t *testing.T) {
		p, d := setup()
		dbErr := errors.New("database is locked")
		d.store.ReplaceResultsFunc = func(ctx context.Context, t tournament.Tournament, res []tournament.TournamentResult) error {
			return dbErr
		}

		_, err := p.ImportResults(context.Background(), ImportRequest{
			Category: tournament.CategoryFederal,
			Workbook: fourTeamWorkbook(t, validRegistration()),
		})
		assert.ErrorIs(t, err, dbErr)
		assert.Empty(t, d.pubsub.SendMessageCalls)
		assert.Empty(t, d.notifier.SendImportSummaryCalls)
		assert.Equal(t, 1, d.metrics.UploadsFailed())
	})

	t.Run("notification failure does not fail the import", func(t *testing.T) {
		p, d := setup()
		d.notifier.SendImportSummaryFunc = func(t tournament.Tournament, res []tournament.TournamentResult, dryRun bool) error {
			return errors.New("slack is down")
		}

		_, err := p.ImportResults(context.Background(), ImportRequest{
			Category: tournament.CategoryFederal,
			Workbook: fourTeamWorkbook(t, validRegistration()),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, d.metrics.UploadsProcessed())
	})

	t.Run("works without a notifier", func(t *testing.T) {
		store := results.NewMock()
		p := New(parser.New(roster.NewResolver(testRoster())), store, nil, metrics.NewMock(), pubsub.NewMock("TEST"))
		_, err := p.ImportResults(context.Background(), ImportRequest{
			TournamentID: "t2",
			Category:     tournament.CategoryFederal,
			Workbook:     fourTeamWorkbook(t, validRegistration()),
		})
		require.NoError(t, err)
		assert.Len(t, store.Results["t2"], 4)
	})
}
