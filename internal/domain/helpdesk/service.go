package helpdesk

import (
	"context"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
	"github.com/yanqian/campus-helpdesk/pkg/metrics"
)

const defaultTopTrending = 10

// Service exposes the helpdesk to transports.
type Service interface {
	Answer(ctx context.Context, req Request) (Response, error)
	Trending(ctx context.Context) ([]TrendingQuery, error)
	CollegeName() string
}

// StatsStore counts answered queries for the trending list.
type StatsStore interface {
	IncrementQuery(ctx context.Context, canonical, display string) error
	TopQueries(ctx context.Context, limit int) ([]TrendingQuery, error)
}

type service struct {
	cfg     Config
	desk    *Helpdesk
	stats   StatsStore
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the helpdesk domain.
func NewService(cfg Config, desk *Helpdesk, stats StatsStore, recorder *metrics.Recorder, logger *slog.Logger) Service {
	return &service{
		cfg:     cfg,
		desk:    desk,
		stats:   stats,
		metrics: recorder,
		logger:  logger.With("component", "helpdesk.service"),
		now:     time.Now,
	}
}

func (s *service) Answer(ctx context.Context, req Request) (Response, error) {
	if req.Message == "" {
		return Response{}, apperrors.Wrap(apperrors.CodeInvalidInput, "No message provided", nil)
	}

	start := s.now()
	reply := s.desk.Answer(req.Message)
	elapsed := s.now().Sub(start)

	s.metrics.ObserveAnswer(string(reply.Intent), string(reply.Status), reply.Fallback, elapsed)
	s.logger.Debug("query answered",
		"intent", reply.Intent,
		"status", reply.Status,
		"fallback", reply.Fallback,
		"latency_us", elapsed.Microseconds(),
	)

	if s.cfg.RecordQueries && s.stats != nil && reply.Matched() {
		canonical := Normalize(req.Message)
		if err := s.stats.IncrementQuery(ctx, canonical, strings.TrimSpace(req.Message)); err != nil {
			s.logger.Warn("trending increment failed", "error", err)
		}
	}

	return Response{
		Answer:   reply.Text,
		Intent:   reply.Intent,
		Status:   reply.Status,
		Fallback: reply.Fallback,
	}, nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	if s.stats == nil {
		return nil, nil
	}
	limit := s.cfg.TopTrending
	if limit <= 0 {
		limit = defaultTopTrending
	}
	items, err := s.stats.TopQueries(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStats, "failed to load trending queries", err)
	}
	return items, nil
}

func (s *service) CollegeName() string {
	return s.desk.CollegeName()
}
