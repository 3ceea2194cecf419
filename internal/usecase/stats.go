package usecase

import "context"

// StatsQueries serves the aggregate counters behind GET /verify/logs.
type StatsQueries interface {
	VerificationStats(ctx context.Context) (Stats, error)
}

type statsQueriesImpl struct {
	counter StatsCounter
}

func NewStatsQueries(counter StatsCounter) StatsQueries {
	return &statsQueriesImpl{counter: counter}
}

func (q *statsQueriesImpl) VerificationStats(ctx context.Context) (Stats, error) {
	return q.counter.Snapshot(ctx)
}
