package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/database"
	"github.com/mauv0809/petanque-ratings/internal/parser"
	"github.com/mauv0809/petanque-ratings/internal/results"
	"github.com/mauv0809/petanque-ratings/internal/roster"
	"github.com/mauv0809/petanque-ratings/internal/scoring"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
	"github.com/spf13/cobra"
)

var (
	parseCategory  int
	parseDB        string
	pointsCategory int
	pointsTeams    int
	pointsWins     int
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func init() {
	parseCmd.Flags().IntVar(&parseCategory, "category", 1, "Tournament category (1 federal, 2 regional)")
	parseCmd.Flags().StringVar(&parseDB, "db", "ratings.db", "Local roster database")
	pointsCmd.Flags().IntVar(&pointsCategory, "category", 1, "Tournament category (1 federal, 2 regional)")
	pointsCmd.Flags().IntVar(&pointsTeams, "teams", 16, "Number of teams in the tournament")
	pointsCmd.Flags().IntVar(&pointsWins, "qualifying-wins", 0, "Qualifying wins, used for cup C")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(pointsCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file.xlsx>",
	Short: "Parse and score a workbook against a local roster without a server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := tournament.Category(parseCategory)
		if !category.Valid() {
			return fmt.Errorf("category must be 1 or 2, got %d", parseCategory)
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read workbook: %w", err)
		}

		db, teardown, err := database.InitDB(parseDB, "", "")
		if err != nil {
			return err
		}
		defer teardown()

		wb, err := workbook.Open(data)
		if err != nil {
			return err
		}
		defer wb.Close()

		parsed, err := parser.New(roster.NewResolver(roster.New(db))).Parse(context.Background(), wb)
		if err != nil {
			for _, msg := range parser.Messages(err) {
				fmt.Println(errorStyle.Render(msg))
			}
			return errors.New("workbook rejected")
		}

		outcome := results.Calculate(category, parsed)
		if outcome.Warnings > 0 {
			log.Warn("Some placements had no points table entry", "count", outcome.Warnings)
		}
		fmt.Println(resultsTable(outcome.Results))
		return nil
	},
}

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the points every cup position earns",
	RunE: func(cmd *cobra.Command, args []string) error {
		category := tournament.Category(pointsCategory)
		if !category.Valid() {
			return fmt.Errorf("category must be 1 or 2, got %d", pointsCategory)
		}
		qualifying := scoring.QualifyingStagePoints(category, pointsWins)
		positions := []tournament.CupPosition{
			tournament.PositionWinner,
			tournament.PositionRunnerUp,
			tournament.PositionThirdPlace,
			tournament.PositionSemiFinal,
			tournament.PositionQuarterFinal,
		}

		t := newTable("Position", "Cup A", "Cup B", "Cup C")
		for _, pos := range positions {
			row := []string{string(pos)}
			for _, cup := range []tournament.Cup{tournament.CupA, tournament.CupB, tournament.CupC} {
				row = append(row, strconv.Itoa(scoring.Points(category, cup, pos, pointsTeams, qualifying)))
			}
			t.Row(row...)
		}
		fmt.Println(t)
		return nil
	},
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)
}

// resultsTable renders results ranked by points.
func resultsTable(res []tournament.TournamentResult) *table.Table {
	ranked := slices.Clone(res)
	slices.SortStableFunc(ranked, func(a, b tournament.TournamentResult) int {
		return cmp.Compare(b.Points, a.Points)
	})

	t := newTable("#", "Team", "Cup", "Position", "W", "L", "Points")
	for i, r := range ranked {
		t.Row(
			strconv.Itoa(i+1),
			r.Team.Label(),
			string(r.Cup),
			string(r.CupPosition),
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Points),
		)
	}
	return t
}
