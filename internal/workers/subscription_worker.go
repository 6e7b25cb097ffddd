package workers

import (
	"context"
	"time"

	"smmehub_backend/internal/logger"
	"smmehub_backend/internal/repositories"
)

// SubscriptionWorker periodically flips expired subscriptions back to
// inactive so access checks never rely on reading the expiry timestamp.
type SubscriptionWorker struct {
	profileRepo repositories.ProfileRepository
	interval    time.Duration
}

func NewSubscriptionWorker(profileRepo repositories.ProfileRepository) *SubscriptionWorker {
	return &SubscriptionWorker{
		profileRepo: profileRepo,
		interval:    time.Hour,
	}
}

func (w *SubscriptionWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *SubscriptionWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// One sweep at startup so restarts do not extend expired subscriptions.
	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Subscription worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SubscriptionWorker) sweep(ctx context.Context) {
	expired, err := w.profileRepo.ExpireSubscriptions(time.Now())
	if err != nil {
		logger.CtxWithError(ctx, "Failed to expire subscriptions", err)
		return
	}
	if expired > 0 {
		logger.CtxInfo(ctx, "Expired subscriptions swept", "count", expired)
	}
}
