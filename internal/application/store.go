package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hackdash/hackdash/internal/domain"
	"github.com/hackdash/hackdash/internal/ports"
)

// defaultHackathonName names the event seeded on first run, before an
// admin has created anything.
const defaultHackathonName = "My Hackathon"

// Store is the state machine behind the dashboard. It owns the full
// application state exclusively, serializes all mutations through Dispatch,
// and writes the durable slice through to the injected persistence port
// after every committed transition. Consumers only ever receive snapshots;
// committed state is never shared by reference.
//
// Store is safe for concurrent use, though the dashboard's design assumes
// a single logical writer at a time.
type Store struct {
	mu      sync.Mutex
	state   domain.AppState
	storage ports.StateStore
	metrics ports.MetricsCollector
	logger  *slog.Logger
}

// StoreOption configures a Store during construction.
type StoreOption func(*Store)

// WithLogger sets the logger used for persistence warnings.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics collector observing dispatches and
// persistence failures.
func WithMetrics(metrics ports.MetricsCollector) StoreOption {
	return func(s *Store) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// NewStore loads the durable slice from storage and returns a ready store.
// A load failure is logged and degrades to a fresh default state rather
// than failing construction; losing a corrupt blob beats refusing to
// start. On first run exactly one default hackathon is created and made
// active, so the hackathon map is never empty. Sessions are never
// persisted: every store starts with no session.
func NewStore(ctx context.Context, storage ports.StateStore, opts ...StoreOption) (*Store, error) {
	s := &Store{
		storage: storage,
		metrics: ports.NopMetrics{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	durable, err := storage.Load(ctx)
	if err != nil {
		s.logger.Warn("could not load persisted state, starting fresh", "error", err)
		s.metrics.RecordPersistenceFailure("load")
		durable = domain.DurableState{}
	}
	s.state = domain.Restore(durable)

	if len(s.state.Hackathons) == 0 {
		h, err := domain.NewHackathon(defaultHackathonName)
		if err != nil {
			return nil, err
		}
		s.state.Hackathons[h.ID] = h
		s.state.ActiveHackathonID = h.ID
		s.persist(ctx)
	} else if _, ok := s.state.ActiveHackathon(); !ok {
		// The persisted active ID no longer keys an entry; fall back to
		// the most recent event and write the repair through so the next
		// load sees a valid ID.
		recent := s.state.HackathonsByRecency()
		s.state.ActiveHackathonID = recent[0].ID
		s.persist(ctx)
	}

	return s, nil
}

// Dispatch applies an action to the state and writes the committed result
// through to storage. Actions are applied strictly in the order Dispatch
// observes them. Dispatch never fails: reducer transitions are total, and
// persistence failures are logged without rolling back the in-memory
// state.
func (s *Store) Dispatch(ctx context.Context, action Action) {
	start := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = Reduce(s.state, action)
	s.persist(ctx)

	s.metrics.RecordDispatch(action.Kind(), "applied")
	s.metrics.RecordLatency("dispatch", time.Since(start))
}

// persist writes the durable slice. Callers must hold s.mu.
func (s *Store) persist(ctx context.Context) {
	if err := s.storage.Save(ctx, s.state.Durable()); err != nil {
		s.logger.Error("could not persist state, continuing in memory", "error", err)
		s.metrics.RecordPersistenceFailure("save")
	}
}

// Login resolves the access code and, on success, establishes the session.
// The returned error is ErrNameRequired or ErrInvalidCredentials on
// failure; the session is left unchanged in that case.
func (s *Store) Login(ctx context.Context, code, name string) error {
	session, err := ResolveLogin(code, name)
	if err != nil {
		return err
	}
	s.Dispatch(ctx, Login{Session: session})
	return nil
}

// Logout clears the session unconditionally.
func (s *Store) Logout(ctx context.Context) {
	s.Dispatch(ctx, Logout{})
}

// ViewAsPublic establishes a read-only public session without a code.
func (s *Store) ViewAsPublic(ctx context.Context) {
	s.Dispatch(ctx, Login{Session: domain.PublicSession()})
}

// GenerateSampleData asks the generator for a sample setup and, once the
// call completes, applies it to the active hackathon in a single dispatch.
// On failure the state is untouched and the error is returned for the
// operator; an abandoned call (context cancellation) likewise applies
// nothing.
func (s *Store) GenerateSampleData(ctx context.Context, gen ports.SampleDataGenerator, topic string) error {
	sample, err := gen.Generate(ctx, topic)
	if err != nil {
		return err
	}
	s.Dispatch(ctx, SetSampleData{Groups: sample.Groups, Criteria: sample.Criteria})
	return nil
}

// State returns a snapshot of the full application state.
func (s *Store) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Session returns the current session.
func (s *Store) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Session
}

// ActiveHackathonID returns the ID of the active hackathon.
func (s *Store) ActiveHackathonID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ActiveHackathonID
}

// ActiveHackathon returns a snapshot of the active hackathon.
func (s *Store) ActiveHackathon() (domain.Hackathon, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.state.ActiveHackathon()
	if !ok {
		return domain.Hackathon{}, false
	}
	return h.Clone(), true
}

// Hackathons returns snapshots of all hackathons, newest first.
func (s *Store) Hackathons() []domain.Hackathon {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.HackathonsByRecency()
}

// Leaderboard computes the ranked results for the active hackathon.
// It returns nil when no hackathon is active.
func (s *Store) Leaderboard() []domain.RankedGroup {
	start := time.Now()
	h, ok := s.ActiveHackathon()
	if !ok {
		return nil
	}
	board := domain.ComputeLeaderboard(h.Groups, h.Criteria, h.Scores)
	s.metrics.RecordLatency("compute_leaderboard", time.Since(start))
	return board
}
