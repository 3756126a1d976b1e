package interview

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ats-client/internal/common/cache"
	"ats-client/internal/common/logger"
)

// ProgressGuard remembers the highest server-reported question index per
// interview. The server is the ordering authority, so a reload reporting
// a lower index than previously observed is recorded as an anomaly and
// logged, but never blocks rendering.
type ProgressGuard struct {
	store  cache.Store
	ttl    time.Duration
	logger logger.Logger
}

func NewProgressGuard(store cache.Store, ttl time.Duration, log logger.Logger) *ProgressGuard {
	return &ProgressGuard{
		store:  store,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "progress-guard"}),
	}
}

// Observe records the index reported for an interview and reports
// whether it regressed below an earlier observation. Cache failures are
// swallowed: the guard is advisory, not load-bearing.
func (g *ProgressGuard) Observe(ctx context.Context, interviewID, currentQuestion int) bool {
	key := progressKey(interviewID)

	regressed := false
	highest := currentQuestion

	if val, ok, err := g.store.Get(ctx, key); err == nil && ok {
		if prev, convErr := strconv.Atoi(val); convErr == nil {
			if currentQuestion < prev {
				regressed = true
				highest = prev
				g.logger.Warn("server reported regressed interview progress", map[string]interface{}{
					"interviewId": interviewID,
					"previous":    prev,
					"reported":    currentQuestion,
				})
			}
		}
	}

	if err := g.store.Set(ctx, key, strconv.Itoa(highest), g.ttl); err != nil {
		g.logger.Debug("progress cache write failed", map[string]interface{}{
			"interviewId": interviewID,
			"error":       err.Error(),
		})
	}

	return regressed
}

func progressKey(interviewID int) string {
	return fmt.Sprintf("interview:progress:%d", interviewID)
}
