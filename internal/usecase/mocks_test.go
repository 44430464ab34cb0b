package usecase

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"wingman-service/internal/domain/entity"
	"wingman-service/pkg/metrics"
)

var errNotFound = errors.New("not found")

// memoryFlightRepo is an in-memory FlightRepository for tests.
type memoryFlightRepo struct {
	mu      sync.Mutex
	records map[string]*entity.FlightRecord
	nextID  int
	failing bool
}

func newMemoryFlightRepo() *memoryFlightRepo {
	return &memoryFlightRepo{records: make(map[string]*entity.FlightRecord)}
}

func (r *memoryFlightRepo) Insert(_ context.Context, record *entity.FlightRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("store unavailable")
	}
	if record.ID == "" {
		r.nextID++
		record.ID = "f-" + strconv.Itoa(r.nextID)
	}
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *memoryFlightRepo) Update(_ context.Context, record *entity.FlightRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[record.ID]; !ok {
		return errNotFound
	}
	stored := *record
	r.records[record.ID] = &stored
	return nil
}

func (r *memoryFlightRepo) FindByID(_ context.Context, id string) (*entity.FlightRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, errNotFound
	}
	found := *record
	return &found, nil
}

func (r *memoryFlightRepo) FindByPilot(_ context.Context, pilotID string, dateRange entity.DateRange, aircraftID uint) ([]*entity.FlightRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.FlightRecord
	for _, record := range r.records {
		if record.PilotID != pilotID {
			continue
		}
		if !dateRange.Contains(record.Date) {
			continue
		}
		if aircraftID != 0 && record.AircraftID != aircraftID {
			continue
		}
		found := *record
		out = append(out, &found)
	}
	return out, nil
}

func (r *memoryFlightRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

// memoryAircraftRepo is an in-memory AircraftRepository for tests.
type memoryAircraftRepo struct {
	aircraft map[uint]*entity.Aircraft
}

func newMemoryAircraftRepo(aircraft ...*entity.Aircraft) *memoryAircraftRepo {
	repo := &memoryAircraftRepo{aircraft: make(map[uint]*entity.Aircraft)}
	for _, a := range aircraft {
		repo.aircraft[a.ID] = a
	}
	return repo
}

func (r *memoryAircraftRepo) GetByID(_ context.Context, id uint) (*entity.Aircraft, error) {
	a, ok := r.aircraft[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *memoryAircraftRepo) GetByRegistration(_ context.Context, registration string) (*entity.Aircraft, error) {
	for _, a := range r.aircraft {
		if a.Registration == registration {
			return a, nil
		}
	}
	return nil, errNotFound
}

func (r *memoryAircraftRepo) List(_ context.Context) ([]*entity.Aircraft, error) {
	out := make([]*entity.Aircraft, 0, len(r.aircraft))
	for _, a := range r.aircraft {
		out = append(out, a)
	}
	return out, nil
}

// recordingMailer captures outbound documents for tests.
type recordingMailer struct {
	sent []sentDocument
	err  error
}

type sentDocument struct {
	To      string
	Subject string
	Body    string
}

func (m *recordingMailer) SendDocument(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentDocument{To: to, Subject: subject, Body: body})
	return nil
}

// Prometheus collectors register globally, so the test metrics are shared.
var (
	testMetricsOnce sync.Once
	testMetrics     *metrics.Metrics
)

func sharedMetrics() *metrics.Metrics {
	testMetricsOnce.Do(func() {
		testMetrics = metrics.NewMetrics("wingman_test")
	})
	return testMetrics
}
