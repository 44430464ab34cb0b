package usecase

import (
	"context"
	"errors"

	"wingman-service/internal/domain/entity"
	"wingman-service/internal/domain/repository"
	"wingman-service/pkg/logger"
	"wingman-service/pkg/metrics"
)

// FlightRecorder runs the flight entry pipeline: decompose derived time
// fields, validate the full record, persist. Edits go through the same
// pipeline, so a record is never silently recomputed without re-validation.
type FlightRecorder struct {
	flightRepo   repository.FlightRepository
	aircraftRepo repository.AircraftRepository
	decomposer   *TimeDecomposer
	validator    *FlightValidator
	aggregator   *FlightAggregator
	metrics      *metrics.Metrics
	logger       logger.Logger
}

// NewFlightRecorder creates a new flight recorder
func NewFlightRecorder(
	flightRepo repository.FlightRepository,
	aircraftRepo repository.AircraftRepository,
	decomposer *TimeDecomposer,
	validator *FlightValidator,
	aggregator *FlightAggregator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightRecorder {
	return &FlightRecorder{
		flightRepo:   flightRepo,
		aircraftRepo: aircraftRepo,
		decomposer:   decomposer,
		validator:    validator,
		aggregator:   aggregator,
		metrics:      metrics,
		logger:       logger,
	}
}

// RecordFlight validates and persists one flight entry. Validation and
// decomposition failures are returned to the caller as structured errors;
// they never abort anything beyond this record.
func (fr *FlightRecorder) RecordFlight(ctx context.Context, record *entity.FlightRecord) (*entity.FlightRecord, error) {
	prepared, err := fr.prepare(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := fr.flightRepo.Insert(ctx, prepared); err != nil {
		fr.metrics.ErrorsCount.WithLabelValues("record_flight").Inc()
		fr.logger.Error("Failed to persist flight record", "pilotID", record.PilotID, "error", err)
		return nil, err
	}

	fr.metrics.FlightsRecorded.Inc()
	fr.logger.Info("Flight recorded",
		"flightID", prepared.ID,
		"pilotID", prepared.PilotID,
		"date", prepared.Date.Format("2006-01-02"),
		"totalTime", prepared.TotalTime)

	return prepared, nil
}

// UpdateFlight re-runs decomposition and validation on an edited record
// before persisting it.
func (fr *FlightRecorder) UpdateFlight(ctx context.Context, record *entity.FlightRecord) (*entity.FlightRecord, error) {
	prepared, err := fr.prepare(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := fr.flightRepo.Update(ctx, prepared); err != nil {
		fr.metrics.ErrorsCount.WithLabelValues("update_flight").Inc()
		fr.logger.Error("Failed to update flight record", "flightID", record.ID, "error", err)
		return nil, err
	}

	fr.logger.Info("Flight updated", "flightID", prepared.ID)
	return prepared, nil
}

// EntryResult is the outcome of one record in a batch.
type EntryResult struct {
	Record *entity.FlightRecord
	Err    error
}

// RecordBatch processes a batch of flight entries. A failing record is
// captured in its result and the rest of the batch continues.
func (fr *FlightRecorder) RecordBatch(ctx context.Context, records []*entity.FlightRecord) []EntryResult {
	results := make([]EntryResult, 0, len(records))
	for _, record := range records {
		stored, err := fr.RecordFlight(ctx, record)
		if err != nil {
			var validationErr *entity.ValidationError
			if errors.As(err, &validationErr) {
				fr.logger.Warn("Flight entry rejected",
					"pilotID", record.PilotID,
					"violations", len(validationErr.Violations))
			}
		}
		results = append(results, EntryResult{Record: stored, Err: err})
	}
	return results
}

// CareerTotals aggregates a pilot's full history into overall totals.
func (fr *FlightRecorder) CareerTotals(ctx context.Context, pilotID string) (entity.CategoryTotals, error) {
	records, err := fr.flightRepo.FindByPilot(ctx, pilotID, entity.DateRange{}, 0)
	if err != nil {
		fr.metrics.ErrorsCount.WithLabelValues("career_totals").Inc()
		return entity.CategoryTotals{}, err
	}

	summary := fr.aggregator.Aggregate(records, entity.GroupByNone, entity.DateRange{})
	return summary.Overall, nil
}

// prepare runs decomposition then validation, returning the derived record.
func (fr *FlightRecorder) prepare(ctx context.Context, record *entity.FlightRecord) (*entity.FlightRecord, error) {
	var aircraft *entity.Aircraft
	if record.HasAircraft() {
		found, err := fr.aircraftRepo.GetByID(ctx, record.AircraftID)
		if err != nil {
			fr.logger.Warn("Aircraft lookup failed", "aircraftID", record.AircraftID, "error", err)
		} else {
			aircraft = found
		}
	}

	prepared, err := fr.decomposer.Decompose(record, aircraft)
	if err != nil {
		fr.metrics.ValidationFailures.Inc()
		fr.logger.Warn("Time decomposition failed", "pilotID", record.PilotID, "error", err)
		return nil, err
	}

	if err := fr.validator.Validate(prepared); err != nil {
		fr.metrics.ValidationFailures.Inc()
		return nil, err
	}

	return prepared, nil
}
