package reaper

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/amalpanikulangara/arreWhatsapp/config"
	"github.com/amalpanikulangara/arreWhatsapp/internal/chat/mocks"
	"github.com/amalpanikulangara/arreWhatsapp/pkg/logger"
)

func newReaper(t *testing.T, ttl, interval time.Duration) (*Reaper, *mocks.MockMessageRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockMessageRepository(ctrl)
	cfg := &config.Config{}
	cfg.Retention.TTL = ttl
	cfg.Retention.SweepInterval = interval
	log, _ := logger.NewLogger(cfg)
	return New(mockRepo, cfg, log), mockRepo
}

func TestReaper_Sweep(t *testing.T) {
	t.Run("happy path - every flagged group is swept with the ttl cutoff", func(t *testing.T) {
		r, mockRepo := newReaper(t, time.Hour, time.Minute)
		g1, g2 := uuid.New(), uuid.New()

		mockRepo.EXPECT().DisappearingGroupIDs(gomock.Any()).Return([]uuid.UUID{g1, g2}, nil)
		for _, id := range []uuid.UUID{g1, g2} {
			id := id
			mockRepo.EXPECT().DeleteExpired(gomock.Any(), id, gomock.Any()).DoAndReturn(
				func(_ context.Context, _ uuid.UUID, cutoff time.Time) (int64, error) {
					want := time.Now().Add(-time.Hour)
					require.WithinDuration(t, want, cutoff, 5*time.Second)
					return 3, nil
				})
		}

		r.sweep(context.Background())
	})

	t.Run("sad path - one failing group does not stop the others", func(t *testing.T) {
		r, mockRepo := newReaper(t, time.Hour, time.Minute)
		g1, g2 := uuid.New(), uuid.New()

		mockRepo.EXPECT().DisappearingGroupIDs(gomock.Any()).Return([]uuid.UUID{g1, g2}, nil)
		mockRepo.EXPECT().DeleteExpired(gomock.Any(), g1, gomock.Any()).
			Return(int64(0), errors.New("deadlock detected"))
		mockRepo.EXPECT().DeleteExpired(gomock.Any(), g2, gomock.Any()).Return(int64(1), nil)

		r.sweep(context.Background())
	})

	t.Run("sad path - listing failure skips the whole cycle", func(t *testing.T) {
		r, mockRepo := newReaper(t, time.Hour, time.Minute)

		mockRepo.EXPECT().DisappearingGroupIDs(gomock.Any()).
			Return(nil, errors.New("connection refused"))

		r.sweep(context.Background())
	})
}

func TestReaper_Run(t *testing.T) {
	t.Run("sweeps on the tick and exits on cancel", func(t *testing.T) {
		r, mockRepo := newReaper(t, time.Hour, 10*time.Millisecond)

		ctx, cancel := context.WithCancel(context.Background())
		swept := make(chan struct{})
		mockRepo.EXPECT().DisappearingGroupIDs(gomock.Any()).DoAndReturn(
			func(context.Context) ([]uuid.UUID, error) {
				select {
				case swept <- struct{}{}:
				default:
				}
				return nil, nil
			}).MinTimes(1)

		done := make(chan struct{})
		go func() {
			r.Run(ctx)
			close(done)
		}()

		select {
		case <-swept:
		case <-time.After(time.Second):
			t.Fatal("reaper never swept")
		}

		cancel()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("reaper did not stop on cancel")
		}
	})
}
