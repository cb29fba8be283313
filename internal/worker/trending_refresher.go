package worker

import (
	"context"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/umamihq/umami-backend/internal/domain/recipe"
	"github.com/umamihq/umami-backend/internal/pkg/logger"
	"github.com/umamihq/umami-backend/internal/services"
)

// TrendingRefresher periodically recomputes the trending recipe feed
// and caches the snapshot so the trending endpoint never waits on the
// CMS. An empty cache falls through to a live computation.
type TrendingRefresher struct {
	recSvc   *services.RecommendationService
	spec     string
	feedSize int
	logger   *logger.Logger

	cron *cron.Cron

	mu       sync.RWMutex
	snapshot []recipe.Recipe
}

// NewTrendingRefresher creates a trending feed refresher
func NewTrendingRefresher(recSvc *services.RecommendationService, spec string, feedSize int, log *logger.Logger) *TrendingRefresher {
	return &TrendingRefresher{
		recSvc:   recSvc,
		spec:     spec,
		feedSize: feedSize,
		logger:   log,
	}
}

// Start schedules the refresh job and performs an initial refresh
func (w *TrendingRefresher) Start(ctx context.Context) error {
	w.logger.Info("Starting trending refresher worker")

	w.refresh(ctx)

	w.cron = cron.New()
	_, err := w.cron.AddFunc(w.spec, func() {
		w.refresh(context.Background())
	})
	if err != nil {
		return err
	}
	w.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running refresh to finish
func (w *TrendingRefresher) Stop() {
	if w.cron == nil {
		return
	}
	<-w.cron.Stop().Done()
	w.logger.Info("Trending refresher worker stopped")
}

// Feed returns the cached trending snapshot, recomputing live when the
// cache is still empty
func (w *TrendingRefresher) Feed(ctx context.Context, limit int) ([]recipe.Recipe, error) {
	w.mu.RLock()
	snapshot := w.snapshot
	w.mu.RUnlock()

	if snapshot == nil {
		return w.recSvc.Trending(ctx, limit)
	}

	if limit > 0 && len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}
	return snapshot, nil
}

func (w *TrendingRefresher) refresh(ctx context.Context) {
	feed, err := w.recSvc.Trending(ctx, w.feedSize)
	if err != nil {
		w.logger.ErrorWithErr(err, "Failed to refresh trending feed")
		return
	}

	w.mu.Lock()
	w.snapshot = feed
	w.mu.Unlock()

	w.logger.WithFields(map[string]interface{}{
		"recipes": len(feed),
	}).Info("Refreshed trending feed")
}
