package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notewell/internal/config"
	"notewell/internal/logger"
	"notewell/internal/mock"
	"notewell/internal/workspace"
)

// mockWorker tracks Run and Stop invocations.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Run()
	ws.Stop()

	assert.Equal(t, 1, w1.stopCount)
	assert.Equal(t, 1, w2.stopCount)
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// must not panic with no workers
	ws.Run()
	ws.Stop()
}

func TestTagRefreshWorker_RefreshesPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNoteGateway(ctrl)
	coordinator := workspace.NewCoordinator(gateway, logger.Nop())

	gateway.EXPECT().ListTags(gomock.Any()).DoAndReturn(
		func(ctx context.Context) ([]string, error) {
			return []string{"home"}, nil
		}).MinTimes(1)

	w := newTagRefreshWorker(coordinator, 10*time.Millisecond, logger.Nop())
	w.Run()
	defer w.Stop()

	require.Eventually(t, func() bool {
		tags := coordinator.Tags()
		return len(tags) == 1 && tags[0] == "home"
	}, 2*time.Second, 5*time.Millisecond, "tag refresh worker never refreshed the catalog")
}

func TestTagRefreshWorker_DisabledWithoutInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNoteGateway(ctrl)
	coordinator := workspace.NewCoordinator(gateway, logger.Nop())

	// no ListTags expectation: a refresh would fail the test
	w := newTagRefreshWorker(coordinator, 0, logger.Nop())
	w.Run()
	w.Stop()

	time.Sleep(20 * time.Millisecond)
}

func TestTagRefreshWorker_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNoteGateway(ctrl)
	coordinator := workspace.NewCoordinator(gateway, logger.Nop())

	w := newTagRefreshWorker(coordinator, time.Hour, logger.Nop())
	w.Run()

	w.Stop()
	w.Stop()
}

func TestNewWorkers_WiresTagRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := mock.NewMockNoteGateway(ctrl)
	coordinator := workspace.NewCoordinator(gateway, logger.Nop())

	ws := NewWorkers(coordinator, config.Workers{TagRefreshInterval: time.Hour}, logger.Nop())

	require.Len(t, ws.workers, 1)
	ws.Run()
	ws.Stop()
}
