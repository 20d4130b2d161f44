package launches

import (
	"context"
	"time"

	"starbase/internal/logger"
	"starbase/pkg/errors"
	"starbase/pkg/metrics"
)

const (
	opList     = "list"
	opHeaviest = "heaviest"
)

// Service exposes the two query operations over the launch data source.
// Each call issues at most one outbound query and blocks until it finishes;
// the service itself holds no mutable state across calls.
type Service interface {
	// ListLaunches returns every launch matching the optional calendar-date
	// range, in the order the data source returned them.
	ListLaunches(ctx context.Context, start, end *time.Time) ([]Launch, error)

	// HeaviestLaunch returns the launch with the greatest summed payload
	// mass within the range, or nil when the range matches nothing.
	HeaviestLaunch(ctx context.Context, start, end *time.Time) (*Launch, error)
}

type serviceImpl struct {
	source DataSource
	logger logger.Logger
}

func NewService(source DataSource, log logger.Logger) Service {
	return &serviceImpl{
		source: source,
		logger: log,
	}
}

func (s *serviceImpl) ListLaunches(ctx context.Context, start, end *time.Time) ([]Launch, error) {
	began := time.Now()

	filter, ok := BuildDateFilter(start, end)
	if !ok {
		// Inverted range: defined as empty, the upstream is never queried.
		s.logger.DebugwCtx(ctx, "Date range inverted, returning empty result", "operation", opList)
		metrics.ObserveLaunchQuery(opList, "empty_range", began)
		return []Launch{}, nil
	}

	docs, err := s.source.QueryLaunches(ctx, QueryRequest{Query: filter, Options: listOptions()})
	if err != nil {
		s.logger.ErrorwCtx(ctx, "Launch query failed", "operation", opList, "error", err)
		metrics.ObserveLaunchQuery(opList, "error", began)
		return nil, errors.ErrUpstream.WithCause(err)
	}

	launches := make([]Launch, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == "" || doc.DateUnix == nil {
			s.logger.DebugwCtx(ctx, "Dropping malformed launch record",
				"operation", opList,
				"id", doc.ID,
			)
			continue
		}
		launches = append(launches, Launch{
			ID:         doc.ID,
			LaunchTime: time.Unix(*doc.DateUnix, 0).UTC(),
			PayloadIDs: payloadIDs(doc.Payloads),
		})
	}

	metrics.ObserveLaunchQuery(opList, "success", began)
	return launches, nil
}

func (s *serviceImpl) HeaviestLaunch(ctx context.Context, start, end *time.Time) (*Launch, error) {
	began := time.Now()

	filter, ok := BuildDateFilter(start, end)
	if !ok {
		s.logger.DebugwCtx(ctx, "Date range inverted, returning no result", "operation", opHeaviest)
		metrics.ObserveLaunchQuery(opHeaviest, "empty_range", began)
		return nil, nil
	}

	docs, err := s.source.QueryLaunches(ctx, QueryRequest{Query: filter, Options: heaviestOptions()})
	if err != nil {
		s.logger.ErrorwCtx(ctx, "Launch query failed", "operation", opHeaviest, "error", err)
		metrics.ObserveLaunchQuery(opHeaviest, "error", began)
		return nil, errors.ErrUpstream.WithCause(err)
	}

	var winner *LaunchDoc
	var winnerMass float64
	for i := range docs {
		doc := &docs[i]
		if doc.ID == "" || doc.DateUnix == nil {
			continue
		}
		mass := totalMass(doc.Payloads)
		// Strict > keeps the first candidate on ties, matching response order.
		if winner == nil || mass > winnerMass {
			winner = doc
			winnerMass = mass
		}
	}

	if winner == nil {
		metrics.ObserveLaunchQuery(opHeaviest, "no_match", began)
		return nil, nil
	}

	metrics.ObserveLaunchQuery(opHeaviest, "success", began)
	mass := winnerMass
	return &Launch{
		ID:                 winner.ID,
		LaunchTime:         time.Unix(*winner.DateUnix, 0).UTC(),
		PayloadIDs:         payloadIDs(winner.Payloads),
		TotalPayloadMassKg: &mass,
	}, nil
}
