package usecase

import (
	"context"
	"fmt"
	"time"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/domain/repository"
	"wingman-service/pkg/logger"
	"wingman-service/pkg/metrics"
	"wingman-service/templates"

	"github.com/google/uuid"
)

// ExportRequest describes one logbook export: whose flights, which slice of
// them, and how the document is laid out and delivered. Pilot identity
// fields are supplied by the caller; this core holds no user store.
type ExportRequest struct {
	Pilot        templates.PilotHeader
	PilotID      string
	DateRange    entity.DateRange
	AircraftID   uint
	PageCapacity int
	EmailTo      string
}

// ExportResult is a rendered logbook export ready for the document
// collaborator or delivery. Totals covers every exported flight and equals
// the last page's carried-forward line.
type ExportResult struct {
	DocumentID string
	Pages      []entity.LogbookPage
	Totals     entity.CategoryTotals
	Document   string
}

// ExportOrchestrator queries the record store, renders the logbook pages,
// resolves aircraft display labels and builds the printable document.
type ExportOrchestrator struct {
	flightRepo   repository.FlightRepository
	aircraftRepo repository.AircraftRepository
	renderer     *LogbookRenderer
	aggregator   *FlightAggregator
	mailer       repository.MailerRepository
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewExportOrchestrator creates a new export orchestrator. mailer may be nil
// when outbound delivery is not configured.
func NewExportOrchestrator(
	flightRepo repository.FlightRepository,
	aircraftRepo repository.AircraftRepository,
	renderer *LogbookRenderer,
	aggregator *FlightAggregator,
	mailer repository.MailerRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ExportOrchestrator {
	return &ExportOrchestrator{
		flightRepo:   flightRepo,
		aircraftRepo: aircraftRepo,
		renderer:     renderer,
		aggregator:   aggregator,
		mailer:       mailer,
		metrics:      metrics,
		logger:       logger,
	}
}

// ExportLogbook renders one logbook export. Export failures abort only this
// request; they are reported back to the caller.
func (eo *ExportOrchestrator) ExportLogbook(ctx context.Context, req ExportRequest) (*ExportResult, error) {
	started := time.Now()

	records, err := eo.flightRepo.FindByPilot(ctx, req.PilotID, req.DateRange, req.AircraftID)
	if err != nil {
		eo.metrics.ErrorsCount.WithLabelValues("export_query").Inc()
		return nil, fmt.Errorf("failed to query flight records: %w", err)
	}

	pages, err := eo.renderer.Render(records, req.PageCapacity)
	if err != nil {
		eo.metrics.ErrorsCount.WithLabelValues("export_render").Inc()
		eo.logger.Warn("Logbook render failed", "pilotID", req.PilotID, "error", err)
		return nil, err
	}

	eo.resolveAircraftLabels(ctx, pages)

	result := &ExportResult{
		DocumentID: uuid.NewString(),
		Pages:      pages,
		Totals:     eo.aggregator.Aggregate(records, entity.GroupByNone, entity.DateRange{}).Overall,
		Document:   templates.BuildLogbookDocument(req.Pilot, pages),
	}

	eo.metrics.ExportsRendered.Inc()
	eo.metrics.PagesRendered.Add(float64(len(pages)))
	eo.metrics.RenderTime.Observe(time.Since(started).Seconds())
	eo.logger.Info("Logbook exported",
		"documentID", result.DocumentID,
		"pilotID", req.PilotID,
		"flights", len(records),
		"pages", len(pages))

	if req.EmailTo != "" && eo.mailer != nil {
		subject := fmt.Sprintf("Your flight logbook export (%d pages)", len(pages))
		if err := eo.mailer.SendDocument(ctx, req.EmailTo, subject, result.Document); err != nil {
			// Delivery is best effort; the rendered document is still
			// returned to the caller.
			eo.metrics.ErrorsCount.WithLabelValues("export_mail").Inc()
			eo.logger.Error("Failed to mail logbook export", "documentID", result.DocumentID, "error", err)
		}
	}

	return result, nil
}

// resolveAircraftLabels fills row labels from the aircraft directory. A
// failed lookup leaves the label empty; the document falls back to the id.
func (eo *ExportOrchestrator) resolveAircraftLabels(ctx context.Context, pages []entity.LogbookPage) {
	labels := make(map[uint]string)
	for p := range pages {
		for r := range pages[p].Rows {
			row := &pages[p].Rows[r]
			if row.AircraftID == 0 {
				continue
			}
			label, ok := labels[row.AircraftID]
			if !ok {
				aircraft, err := eo.aircraftRepo.GetByID(ctx, row.AircraftID)
				if err != nil {
					eo.logger.Warn("Aircraft label lookup failed", "aircraftID", row.AircraftID, "error", err)
					labels[row.AircraftID] = ""
					continue
				}
				label = aircraft.Label()
				labels[row.AircraftID] = label
			}
			row.AircraftLabel = label
		}
	}
}
