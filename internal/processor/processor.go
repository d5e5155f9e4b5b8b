package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/petanque-ratings/internal/metrics"
	"github.com/mauv0809/petanque-ratings/internal/parser"
	"github.com/mauv0809/petanque-ratings/internal/pubsub"
	"github.com/mauv0809/petanque-ratings/internal/results"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

// New creates a new Processor. notifier may be nil when notifications are
// not configured.
func New(parser Parser, store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Processor {
	return &Processor{
		parser:   parser,
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// ImportResults parses and scores a workbook, then stores and announces the
// results unless the request is a dry run. On any parse failure nothing is
// stored and the error is returned unchanged.
func (p *Processor) ImportResults(ctx context.Context, req ImportRequest) (*ImportSummary, error) {
	if !req.Category.Valid() {
		p.metrics.IncUploadsFailed()
		return nil, fmt.Errorf("%w: category must be 1 or 2, got %d", ErrInvalidRequest, req.Category)
	}
	if len(req.Workbook) == 0 {
		p.metrics.IncUploadsFailed()
		return nil, fmt.Errorf("%w: empty workbook", ErrInvalidRequest)
	}
	if req.TournamentID == "" {
		req.TournamentID = uuid.NewString()
	}
	if req.Name == "" {
		req.Name = req.TournamentID
	}

	log.Info("Importing tournament results", "tournament", req.TournamentID, "name", req.Name, "category", req.Category, "dry_run", req.DryRun)
	start := time.Now()

	wb, err := workbook.Open(req.Workbook)
	if err != nil {
		return nil, p.fail(req, err)
	}
	defer wb.Close()

	parsed, err := p.parser.Parse(ctx, wb)
	if err != nil {
		return nil, p.fail(req, err)
	}
	outcome := results.Calculate(req.Category, parsed)
	p.metrics.ObserveParseDuration(time.Since(start).Seconds())

	t := tournament.Tournament{
		ID:        req.TournamentID,
		Name:      req.Name,
		Category:  req.Category,
		TeamCount: len(outcome.Results),
	}

	if !req.DryRun {
		if err := p.store.ReplaceResults(ctx, t, outcome.Results); err != nil {
			return nil, p.fail(req, err)
		}
		p.publish(t, outcome.Results)
	}

	if p.notifier != nil {
		if err := p.notifier.SendImportSummary(t, outcome.Results, req.DryRun); err != nil {
			log.Error("Failed to send import summary", "error", err, "tournament", t.ID)
		}
	}

	p.metrics.IncUploadsProcessed()
	p.metrics.AddResultsProduced(len(outcome.Results))
	p.metrics.AddScoringFallbacks(outcome.Warnings)
	log.Info("Tournament results imported", "tournament", t.ID, "teams", t.TeamCount, "warnings", outcome.Warnings, "duration", time.Since(start))

	return &ImportSummary{
		Tournament: t,
		Results:    outcome.Results,
		Warnings:   outcome.Warnings,
		DryRun:     req.DryRun,
	}, nil
}

func (p *Processor) fail(req ImportRequest, err error) error {
	p.metrics.IncUploadsFailed()
	log.Error("Failed to import tournament results", "error", err, "tournament", req.TournamentID)
	if p.notifier != nil {
		if nerr := p.notifier.SendImportFailure(req.Name, parser.Messages(err), req.DryRun); nerr != nil {
			log.Error("Failed to send import failure", "error", nerr, "tournament", req.TournamentID)
		}
	}
	return err
}

// publish announces stored results. Failures are logged only; the results
// are already persisted.
func (p *Processor) publish(t tournament.Tournament, res []tournament.TournamentResult) {
	event := pubsub.ResultsImported{
		TournamentID: t.ID,
		Name:         t.Name,
		Category:     int(t.Category),
		Results:      make([]pubsub.TeamStanding, 0, len(res)),
	}
	for _, r := range res {
		event.Results = append(event.Results, pubsub.TeamStanding{
			TeamKey:     r.TeamKey,
			PlayerIDs:   r.Team.PlayerIDs(),
			Cup:         string(r.Cup),
			CupPosition: string(r.CupPosition),
			Points:      r.Points,
			Wins:        r.Wins,
			Losses:      r.Losses,
		})
	}
	if err := p.pubsub.SendMessage(pubsub.EventResultsImported, event); err != nil {
		log.Error("Failed to publish results", "error", err, "tournament", t.ID)
	}
}
