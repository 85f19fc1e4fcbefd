// Package quote - Quote service
package quote

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"motor-premium/core/rating"
	"motor-premium/core/tariff"
	"motor-premium/core/types"
	"motor-premium/internal/errors"
	"motor-premium/internal/metrics"
)

// Record is a quote as handed to the contract system for storage
type Record struct {
	ID         uuid.UUID          `json:"id"`
	SnapshotID string             `json:"tariff_snapshot"`
	IssuedAt   time.Time          `json:"issued_at"`
	Quote      types.PremiumQuote `json:"quote"`
}

// Result is the outcome of one batch item
type Result struct {
	Index  int     `json:"index"`
	Record *Record `json:"record,omitempty"`
	Err    error   `json:"-"`
}

// Service rates requests against the store's current snapshot
type Service struct {
	store    *tariff.Store
	logger   *zap.Logger
	recorder metrics.Recorder
	now      func() time.Time
	newID    func() uuid.UUID
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithRecorder sets the metrics recorder
func WithRecorder(r metrics.Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// WithClock sets the clock used for vehicle age and issue time
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDs sets the record id generator
func WithIDs(newID func() uuid.UUID) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// NewService creates a quote service
func NewService(store *tariff.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		logger:   zap.NewNop(),
		recorder: metrics.NopRecorder{},
		now:      time.Now,
		newID:    uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns an engine bound to the current snapshot
func (s *Service) Engine() (*rating.Engine, *tariff.Snapshot) {
	snap := s.store.Current()
	return rating.NewEngine(snap.Tables(), rating.WithClock(s.now)), snap
}

// Quote prices one vehicle
func (s *Service) Quote(ctx context.Context, profile types.VehicleProfile, selections types.CoverageSelections) (*Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	engine, snap := s.Engine()
	q, err := engine.ComputeQuote(profile, selections)
	if err != nil {
		s.reject(err, profile)
		return nil, err
	}

	rec := &Record{
		ID:         s.newID(),
		SnapshotID: string(snap.ID),
		IssuedAt:   s.now().UTC(),
		Quote:      q,
	}
	s.recorder.RecordQuote(q)
	s.logger.Debug("quote computed",
		zap.String("id", rec.ID.String()),
		zap.String("usage", q.Usage.String()),
		zap.String("tier", q.Tier.String()),
		zap.Bool("custom_rate", q.Rate.IsCustom),
		zap.Bool("floor_applied", q.FloorApplied),
		zap.Int64("grand_total", q.GrandTotal),
		zap.String("tariff", rec.SnapshotID),
	)
	return rec, nil
}

// QuoteRequest converts and prices a wire request
func (s *Service) QuoteRequest(ctx context.Context, req Request) (*Record, error) {
	profile, selections, err := req.Inputs()
	if err != nil {
		s.reject(err, profile)
		return nil, err
	}
	return s.Quote(ctx, profile, selections)
}

// Batch prices requests concurrently with at most workers in flight.
// Invalid requests fail only their own item; results keep request order.
func (s *Service) Batch(ctx context.Context, reqs []Request, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]Result, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			rec, err := s.QuoteRequest(ctx, req)
			results[i] = Result{Index: i, Record: rec, Err: err}
			if err != nil && (stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded)) {
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func (s *Service) reject(err error, profile types.VehicleProfile) {
	reason := "invalid_input"
	var e *errors.Error
	if stderrors.As(err, &e) && e.Field != "" {
		reason = e.Field
	}
	s.recorder.RecordRejection(reason)
	s.logger.Info("quote rejected",
		zap.String("usage", profile.Usage.String()),
		zap.String("reason", reason),
		zap.Error(err),
	)
}
