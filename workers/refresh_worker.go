package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
	"vigia/interfaces"
	"vigia/models"
	"vigia/services"

	"github.com/sirupsen/logrus"
)

// RefreshWorker owns the dashboard's periodic refresh cycles: the
// landing-page snapshot and the alert feed, each on its own interval,
// broadcast to connected dashboards through the hub.
//
// Every refresh carries a monotonic sequence number and a completion is
// applied only if it is newer than the last one applied, so a slow poll
// resolving after a faster successor can never clobber fresher data.
// Stop cancels both loops deterministically; no timer outlives the worker.
type RefreshWorker struct {
	dashboardService *services.DashboardService
	alertService     *services.AlertService
	hub              interfaces.LiveBroadcaster

	dashboardInterval time.Duration
	feedInterval      time.Duration

	// Monotonic refresh sequencing
	nextSeq       uint64
	lastDashboard uint64
	lastFeed      uint64
	applyMutex    sync.Mutex

	// Worker state
	isRunning bool
	mutex     sync.Mutex

	// Context for shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Metrics
	stats      RefreshWorkerStats
	statsMutex sync.RWMutex
}

type RefreshWorkerStats struct {
	DashboardRefreshes int64     `json:"dashboardRefreshes"`
	FeedRefreshes      int64     `json:"feedRefreshes"`
	RefreshFailures    int64     `json:"refreshFailures"`
	StaleDiscards      int64     `json:"staleDiscards"`
	LastRefreshAt      time.Time `json:"lastRefreshAt"`
	StartTime          time.Time `json:"startTime"`
}

func NewRefreshWorker(
	dashboardService *services.DashboardService,
	alertService *services.AlertService,
	hub interfaces.LiveBroadcaster,
	dashboardInterval time.Duration,
	feedInterval time.Duration,
) *RefreshWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &RefreshWorker{
		dashboardService:  dashboardService,
		alertService:      alertService,
		hub:               hub,
		dashboardInterval: dashboardInterval,
		feedInterval:      feedInterval,
		ctx:               ctx,
		cancel:            cancel,
		stats: RefreshWorkerStats{
			StartTime: time.Now(),
		},
	}
}

func (rw *RefreshWorker) Start() error {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	if rw.isRunning {
		return nil
	}
	rw.isRunning = true

	logrus.Infof("Starting refresh worker (dashboard every %s, feed every %s)",
		rw.dashboardInterval, rw.feedInterval)

	rw.wg.Add(2)
	go rw.runDashboardLoop()
	go rw.runFeedLoop()

	return nil
}

func (rw *RefreshWorker) Stop() error {
	rw.mutex.Lock()
	defer rw.mutex.Unlock()

	if !rw.isRunning {
		return nil
	}

	logrus.Info("Stopping refresh worker...")
	rw.cancel()
	rw.wg.Wait()
	rw.isRunning = false

	logrus.Info("Refresh worker stopped")
	return nil
}

func (rw *RefreshWorker) runDashboardLoop() {
	defer rw.wg.Done()

	// Prime immediately so dashboards have data before the first tick.
	rw.refreshDashboard()

	ticker := time.NewTicker(rw.dashboardInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rw.refreshDashboard()
		case <-rw.ctx.Done():
			return
		}
	}
}

func (rw *RefreshWorker) runFeedLoop() {
	defer rw.wg.Done()

	rw.refreshFeed()

	ticker := time.NewTicker(rw.feedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rw.refreshFeed()
		case <-rw.ctx.Done():
			return
		}
	}
}

func (rw *RefreshWorker) refreshDashboard() {
	seq := atomic.AddUint64(&rw.nextSeq, 1)

	snapshot, err := rw.dashboardService.Refresh(rw.ctx)
	if err != nil {
		rw.recordFailure()
		logrus.Warnf("Dashboard refresh %d failed: %v", seq, err)
		return
	}

	if !rw.applyDashboard(seq) {
		return
	}

	if rw.hub != nil {
		rw.hub.BroadcastDashboard(*snapshot, seq)
	}
	rw.recordDashboardRefresh()
}

func (rw *RefreshWorker) refreshFeed() {
	seq := atomic.AddUint64(&rw.nextSeq, 1)

	feed, err := rw.alertService.Feed(rw.ctx, models.AlertFilter{})
	if err != nil {
		rw.recordFailure()
		logrus.Warnf("Alert feed refresh %d failed: %v", seq, err)
		return
	}

	if !rw.applyFeed(seq) {
		return
	}

	if rw.hub != nil {
		rw.hub.BroadcastAlertFeed(*feed, seq)
	}
	rw.recordFeedRefresh()
}

// applyDashboard admits a completed refresh only if nothing newer has
// been applied since it was issued.
func (rw *RefreshWorker) applyDashboard(seq uint64) bool {
	rw.applyMutex.Lock()
	defer rw.applyMutex.Unlock()

	if seq <= rw.lastDashboard {
		rw.recordStaleDiscard()
		return false
	}
	rw.lastDashboard = seq
	return true
}

func (rw *RefreshWorker) applyFeed(seq uint64) bool {
	rw.applyMutex.Lock()
	defer rw.applyMutex.Unlock()

	if seq <= rw.lastFeed {
		rw.recordStaleDiscard()
		return false
	}
	rw.lastFeed = seq
	return true
}

func (rw *RefreshWorker) recordDashboardRefresh() {
	rw.statsMutex.Lock()
	rw.stats.DashboardRefreshes++
	rw.stats.LastRefreshAt = time.Now()
	rw.statsMutex.Unlock()
}

func (rw *RefreshWorker) recordFeedRefresh() {
	rw.statsMutex.Lock()
	rw.stats.FeedRefreshes++
	rw.stats.LastRefreshAt = time.Now()
	rw.statsMutex.Unlock()
}

func (rw *RefreshWorker) recordFailure() {
	rw.statsMutex.Lock()
	rw.stats.RefreshFailures++
	rw.statsMutex.Unlock()
}

func (rw *RefreshWorker) recordStaleDiscard() {
	rw.statsMutex.Lock()
	rw.stats.StaleDiscards++
	rw.statsMutex.Unlock()
}

func (rw *RefreshWorker) GetStats() RefreshWorkerStats {
	rw.statsMutex.RLock()
	defer rw.statsMutex.RUnlock()
	return rw.stats
}
