package stream

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logdeck/internal/app/bus"
	"logdeck/internal/app/store"
	"logdeck/internal/config"
)

var start = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func newTestStreamer(t *testing.T, s store.Store) (Streamer, *ManualScheduler) {
	t.Helper()

	scheduler := NewManualScheduler(start)
	streamer := NewStreamer(2*time.Second, scheduler, NewGenerator(), s, scheduler.Now, nil, nil)

	return streamer, scheduler
}

func Test_Streamer_TickThenStop(t *testing.T) {
	s := store.New(config.DefaultStoreCapacity, nil, nil)
	streamer, scheduler := newTestStreamer(t, s)
	ctx := context.Background()

	require.NoError(t, streamer.Start(ctx))
	assert.True(t, streamer.IsStreaming())

	scheduler.Advance(2000 * time.Millisecond)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, streamer.Stop(ctx))
	assert.False(t, streamer.IsStreaming())

	scheduler.Advance(2000 * time.Millisecond)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 0, scheduler.Pending())
}

func Test_Streamer_EntriesStampedWithTickTime(t *testing.T) {
	s := store.New(10, nil, nil)
	streamer, scheduler := newTestStreamer(t, s)

	require.NoError(t, streamer.Start(context.Background()))

	scheduler.Advance(6 * time.Second)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, start.Add(6*time.Second), snapshot[0].Timestamp)
	assert.Equal(t, start.Add(4*time.Second), snapshot[1].Timestamp)
	assert.Equal(t, start.Add(2*time.Second), snapshot[2].Timestamp)
}

func Test_Streamer_NoTickBeforeInterval(t *testing.T) {
	s := store.New(10, nil, nil)
	streamer, scheduler := newTestStreamer(t, s)

	require.NoError(t, streamer.Start(context.Background()))

	scheduler.Advance(1999 * time.Millisecond)
	assert.Equal(t, 0, s.Len())

	scheduler.Advance(time.Millisecond)
	assert.Equal(t, 1, s.Len())
}

func Test_Streamer_RedundantTransitions(t *testing.T) {
	s := store.New(10, nil, nil)
	streamer, scheduler := newTestStreamer(t, s)
	ctx := context.Background()

	assert.NoError(t, streamer.Stop(ctx))
	assert.Equal(t, Idle, streamer.State())

	require.NoError(t, streamer.Start(ctx))
	require.NoError(t, streamer.Start(ctx))
	assert.Equal(t, 1, scheduler.Pending())

	scheduler.Advance(2 * time.Second)
	assert.Equal(t, 1, s.Len())
}

func Test_Streamer_Toggle(t *testing.T) {
	s := store.New(10, nil, nil)
	streamer, _ := newTestStreamer(t, s)
	ctx := context.Background()

	require.NoError(t, streamer.Toggle(ctx))
	assert.Equal(t, Streaming, streamer.State())

	require.NoError(t, streamer.Toggle(ctx))
	assert.Equal(t, Idle, streamer.State())
}

func Test_Streamer_Restart(t *testing.T) {
	s := store.New(10, nil, nil)
	streamer, scheduler := newTestStreamer(t, s)
	ctx := context.Background()

	require.NoError(t, streamer.Start(ctx))
	require.NoError(t, streamer.Stop(ctx))
	require.NoError(t, streamer.Start(ctx))

	scheduler.Advance(2 * time.Second)

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, scheduler.Pending())
}

func Test_Streamer_Close(t *testing.T) {
	s := store.New(10, nil, nil)
	streamer, scheduler := newTestStreamer(t, s)

	require.NoError(t, streamer.Start(context.Background()))
	streamer.Close()

	scheduler.Advance(10 * time.Second)

	assert.Equal(t, 0, s.Len())
	assert.False(t, streamer.IsStreaming())
}

func Test_Streamer_DefaultInterval(t *testing.T) {
	streamer := NewStreamer(0, NewManualScheduler(start), NewGenerator(), store.New(1, nil, nil), nil, nil, nil)

	assert.Equal(t, config.DefaultStreamInterval, streamer.Interval())
}

func Test_Streamer_PublishesStateChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBus := bus.NewMockBus(ctrl)
	scheduler := NewManualScheduler(start)
	streamer := NewStreamer(2*time.Second, scheduler, NewGenerator(), store.New(10, nil, nil), scheduler.Now, mockBus, nil)

	gomock.InOrder(
		mockBus.EXPECT().Publish(gomock.Any()).Do(func(msg bus.Message) {
			assert.Equal(t, bus.EventStreamStarted, msg.Type)
			assert.Equal(t, bus.StreamChanged{Interval: 2 * time.Second}, msg.Data)
		}),
		mockBus.EXPECT().Publish(gomock.Any()).Do(func(msg bus.Message) {
			assert.Equal(t, bus.EventStreamStopped, msg.Type)
		}),
	)

	ctx := context.Background()
	require.NoError(t, streamer.Start(ctx))
	require.NoError(t, streamer.Stop(ctx))
}

func Test_TimerScheduler_CancelIsSynchronous(t *testing.T) {
	var count atomic.Int32

	handle := NewTimerScheduler().Every(5*time.Millisecond, func() {
		count.Add(1)
	})

	assert.Eventually(t, func() bool { return count.Load() >= 2 }, time.Second, time.Millisecond)

	handle.Cancel()
	stopped := count.Load()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, count.Load())
}

func Test_TimerScheduler_CancelWaitsForInFlightTick(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})

	var finished atomic.Bool

	handle := NewTimerScheduler().Every(time.Millisecond, func() {
		select {
		case <-entered:
			return
		default:
		}

		close(entered)
		<-release
		finished.Store(true)
	})

	<-entered

	go func() {
		time.Sleep(10 * time.Millisecond)
		close(release)
	}()

	handle.Cancel()
	assert.True(t, finished.Load())
}

func Test_ManualScheduler_MultipleTasks(t *testing.T) {
	scheduler := NewManualScheduler(start)

	var order []string

	scheduler.Every(3*time.Second, func() { order = append(order, "slow") })
	fast := scheduler.Every(time.Second, func() { order = append(order, "fast") })

	scheduler.Advance(3 * time.Second)
	fast.Cancel()
	scheduler.Advance(3 * time.Second)

	assert.Equal(t, []string{"fast", "fast", "slow", "fast", "slow"}, order)
	assert.Equal(t, start.Add(6*time.Second), scheduler.Now())
}
