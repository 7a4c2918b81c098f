package swap

import (
	"context"
	"time"

	"fxswap/internal/adapters"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Settler periodically confirms pending swaps whose settle deadline has
// passed. Settlement is simulated: a fixed delay, no cancellation.
type Settler struct {
	store    adapters.SwapStore
	interval time.Duration
	// -----
	sched gocron.Scheduler
}

func (s *Settler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		SettleDue(s.store, time.Now(), execID)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Settler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Settler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

// SettleDue confirms every pending swap due at now and logs each confirmation.
func SettleDue(store adapters.SwapStore, now time.Time, execID string) int {
	confirmed := store.ConfirmDue(now)
	for _, sw := range confirmed {
		logrus.WithFields(logrus.Fields{
			"swap_id": sw.ID.String(),
			"pair":    sw.Pair.String(),
		}).Infof("Swap confirmed; execID: %s", execID)
	}
	return len(confirmed)
}

func NewSettler(store adapters.SwapStore, interval time.Duration) *Settler {
	return &Settler{store: store, interval: interval}
}
