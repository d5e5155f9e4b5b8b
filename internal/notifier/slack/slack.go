package slack

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/metrics"
	"github.com/mauv0809/petanque-ratings/internal/notifier"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/slack-go/slack"
)

// maxListedProblems caps the problem list of a failure message.
const maxListedProblems = 15

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

func (s *Notifier) SendImportSummary(t tournament.Tournament, results []tournament.TournamentResult, dryRun bool) error {
	msg := s.formatImportSummary(t, results)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendImportFailure(tournamentName string, problems []string, dryRun bool) error {
	msg := s.formatImportFailure(tournamentName, problems)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatResultsResponse formats stored tournament results for a slash command response.
func (s *Notifier) FormatResultsResponse(t tournament.Tournament, results []tournament.TournamentResult) (any, error) {
	return s.formatResults(t, results), nil
}

// FormatTournamentNotFoundResponse formats a tournament not found message for a slash command response.
func (s *Notifier) FormatTournamentNotFoundResponse(query string) (any, error) {
	text := slack.NewTextBlockObject("mrkdwn", fmt.Sprintf("No results stored for tournament `%s`.", query), false, false)
	return slack.NewBlockMessage(slack.NewSectionBlock(text, nil, nil)), nil
}

func categoryName(c tournament.Category) string {
	switch c {
	case tournament.CategoryFederal:
		return "Federal"
	case tournament.CategoryRegional:
		return "Regional"
	}
	return fmt.Sprintf("Category %d", c)
}

func medal(position tournament.CupPosition) string {
	switch position {
	case tournament.PositionWinner:
		return "🥇"
	case tournament.PositionRunnerUp:
		return "🥈"
	case tournament.PositionThirdPlace:
		return "🥉"
	}
	return ""
}

// formatImportSummary lists the podium of every cup.
func (s *Notifier) formatImportSummary(t tournament.Tournament, results []tournament.TournamentResult) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 Results imported: %s", t.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("%s tournament, %d teams", categoryName(t.Category), len(results))
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, true, false), nil, nil))

	podium := make([]tournament.TournamentResult, 0)
	for _, res := range results {
		if medal(res.CupPosition) != "" {
			podium = append(podium, res)
		}
	}
	slices.SortStableFunc(podium, func(a, b tournament.TournamentResult) int {
		if c := cmp.Compare(a.Cup, b.Cup); c != 0 {
			return c
		}
		return cmp.Compare(b.CupPosition.Rank(), a.CupPosition.Rank())
	})

	if len(podium) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No cup placements recorded.", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	var lines []string
	for _, res := range podium {
		lines = append(lines, fmt.Sprintf("Cup %s %s %s (%d pts)", res.Cup, medal(res.CupPosition), res.Team.Label(), res.Points))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	return slack.NewBlockMessage(blocks...)
}

// formatImportFailure lists the problems that rejected a workbook.
func (s *Notifier) formatImportFailure(tournamentName string, problems []string) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("⚠️ Import rejected: %s", tournamentName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	listed := problems
	if len(listed) > maxListedProblems {
		listed = listed[:maxListedProblems]
	}
	lines := make([]string, 0, len(listed))
	for _, p := range listed {
		lines = append(lines, fmt.Sprintf("• %s", p))
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), true, false), nil, nil))

	if hidden := len(problems) - len(listed); hidden > 0 {
		more := slack.NewTextBlockObject("plain_text", fmt.Sprintf("…and %d more", hidden), true, false)
		blocks = append(blocks, slack.NewContextBlock("", more))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatResults ranks every team of a stored tournament by points.
func (s *Notifier) formatResults(t tournament.Tournament, results []tournament.TournamentResult) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("📋 %s", t.Name), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	ranked := slices.Clone(results)
	slices.SortStableFunc(ranked, func(a, b tournament.TournamentResult) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		return cmp.Compare(b.Wins, a.Wins)
	})

	lines := make([]string, 0, len(ranked))
	for i, res := range ranked {
		line := fmt.Sprintf("%d. %s: %d pts (%d-%d)", i+1, res.Team.Label(), res.Points, res.Wins, res.Losses)
		if res.Cup != tournament.CupNone {
			line += fmt.Sprintf(", cup %s", res.Cup)
		}
		lines = append(lines, line)
	}
	body := strings.Join(lines, "\n")
	if len(lines) == 0 {
		body = "No teams recorded."
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", body, true, false), nil, nil))

	footer := slack.NewTextBlockObject("plain_text", fmt.Sprintf("%s tournament, %d teams", categoryName(t.Category), len(results)), true, false)
	blocks = append(blocks, slack.NewContextBlock("", footer))

	return slack.NewBlockMessage(blocks...)
}
