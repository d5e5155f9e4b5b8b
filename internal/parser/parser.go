package parser

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/petanque-ratings/internal/tournament"
	"github.com/mauv0809/petanque-ratings/internal/workbook"
)

// PlayerResolver maps a free-text name to exactly one roster player.
type PlayerResolver interface {
	Resolve(ctx context.Context, raw string) (tournament.Player, error)
}

// Parser extracts tournament data from result workbooks.
type Parser struct {
	resolver PlayerResolver
}

// New creates a Parser resolving names through resolver.
func New(resolver PlayerResolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse reads registration, qualifying, crossover and cup sheets, or the
// manual entry sheet when the workbook has one. It returns either the complete
// parse or an error: a *ValidationError listing every problem of the first
// failing sheet, or a structural error.
func (p *Parser) Parse(ctx context.Context, wb *workbook.Workbook) (*tournament.ParsedTournament, error) {
	r := newRun(ctx, wb, p.resolver)
	if err := r.parseRegistration(); err != nil {
		return nil, err
	}
	parsed := &tournament.ParsedTournament{Teams: r.teams}

	if sheet, ok := wb.FindSheet(sheetManual); ok {
		manual, err := r.parseManual(sheet)
		if err != nil {
			return nil, err
		}
		qualifying, err := r.parseQualifying(false)
		if err != nil {
			return nil, err
		}
		parsed.Manual = manual
		parsed.Qualifying = qualifying
		parsed.Placements = make(map[int]tournament.Placement)
		for order, entry := range manual {
			if entry.Cup != tournament.CupNone {
				parsed.Placements[order] = tournament.Placement{Cup: entry.Cup, Position: entry.Position}
			}
		}
		log.Info("Parsed manual results workbook", "teams", len(parsed.Teams), "entries", len(manual))
		return parsed, nil
	}

	qualifying, err := r.parseQualifying(true)
	if err != nil {
		return nil, err
	}
	crossover, err := r.parseCrossover()
	if err != nil {
		return nil, err
	}
	placements, err := r.parseCups()
	if err != nil {
		return nil, err
	}

	parsed.Qualifying = qualifying
	parsed.Crossover = crossover
	parsed.Placements = placements
	log.Info("Parsed bracket results workbook", "teams", len(parsed.Teams), "placed", len(placements), "crossover", crossover != nil)
	return parsed, nil
}
