package helpdesk

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/campus-helpdesk/pkg/errors"
	"github.com/yanqian/campus-helpdesk/pkg/metrics"
)

type stubStats struct {
	incremented [][2]string
	incErr      error
	top         []TrendingQuery
	topErr      error
	limit       int
}

func (s *stubStats) IncrementQuery(_ context.Context, canonical, display string) error {
	s.incremented = append(s.incremented, [2]string{canonical, display})
	return s.incErr
}

func (s *stubStats) TopQueries(_ context.Context, limit int) ([]TrendingQuery, error) {
	s.limit = limit
	return s.top, s.topErr
}

func newTestService(t *testing.T, cfg Config, stats StatsStore) Service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	recorder := metrics.NewRecorder(prometheus.NewRegistry())
	return NewService(cfg, newTestHelpdesk(t), stats, recorder, logger)
}

func TestServiceRejectsMissingMessage(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	_, err := svc.Answer(context.Background(), Request{})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceAnswers(t *testing.T) {
	svc := newTestService(t, Config{}, nil)

	resp, err := svc.Answer(context.Background(), Request{Message: "route 2"})
	require.NoError(t, err)
	require.Equal(t, IntentRoute, resp.Intent)
	require.Equal(t, StatusFound, resp.Status)
	require.False(t, resp.Fallback)
	require.Contains(t, resp.Answer, "🚌 Route 2")

	resp, err = svc.Answer(context.Background(), Request{Message: "   "})
	require.NoError(t, err)
	require.Equal(t, IntentUsage, resp.Intent)

	require.Equal(t, "Greenfield Institute of Engineering", svc.CollegeName())
}

func TestServiceRecordsOnlyMatchedQueries(t *testing.T) {
	stats := &stubStats{incErr: errors.New("valkey down")}
	svc := newTestService(t, Config{RecordQueries: true}, stats)
	ctx := context.Background()

	_, err := svc.Answer(ctx, Request{Message: "  Route 02! "})
	require.NoError(t, err, "stats failures never fail an answer")
	_, err = svc.Answer(ctx, Request{Message: "nizampet"})
	require.NoError(t, err)

	require.Equal(t, [][2]string{{"route 02", "Route 02!"}}, stats.incremented)
}

func TestServiceSkipsRecordingWhenDisabled(t *testing.T) {
	stats := &stubStats{}
	svc := newTestService(t, Config{}, stats)

	_, err := svc.Answer(context.Background(), Request{Message: "route 2"})
	require.NoError(t, err)
	require.Empty(t, stats.incremented)
}

func TestServiceTrending(t *testing.T) {
	stats := &stubStats{top: []TrendingQuery{{Query: "route 2", Count: 3}}}
	svc := newTestService(t, Config{}, stats)

	items, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Equal(t, stats.top, items)
	require.Equal(t, defaultTopTrending, stats.limit)

	svc = newTestService(t, Config{TopTrending: 3}, stats)
	_, err = svc.Trending(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, stats.limit)

	stats.topErr = errors.New("boom")
	_, err = svc.Trending(context.Background())
	require.True(t, apperrors.IsCode(err, apperrors.CodeStats))

	items, err = newTestService(t, Config{}, nil).Trending(context.Background())
	require.NoError(t, err)
	require.Empty(t, items)
}
