package progrock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/pkgr/internal/adapters/telemetry/progrock"
	"go.trai.ch/pkgr/internal/core/domain"
)

type captureWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *captureWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *captureWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

// latest returns the last recorded state per vertex name.
func (w *captureWriter) latest() map[string]*vprogrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]*vprogrock.Vertex)
	for _, u := range w.updates {
		for _, v := range u.GetVertexes() {
			out[v.GetName()] = v
		}
	}
	return out
}

func event(kind domain.ActionEventKind, id, version string) domain.ActionEvent {
	return domain.ActionEvent{Kind: kind, Identity: domain.MustIdentity(id, version), Project: "app"}
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
	assert.NoError(t, recorder.Close())
}

func TestRecorder_CompletesActions(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w)

	recorder.OnAction(event(domain.EventUninstalling, "A", "1.0.0"))
	recorder.OnAction(event(domain.EventUninstalled, "A", "1.0.0"))
	recorder.OnAction(event(domain.EventInstalling, "B", "2.0.0"))
	recorder.OnAction(event(domain.EventInstalled, "B", "2.0.0"))

	vertexes := w.latest()
	require.Contains(t, vertexes, "uninstall A@1.0.0")
	require.Contains(t, vertexes, "install B@2.0.0")
	assert.NotNil(t, vertexes["uninstall A@1.0.0"].GetCompleted())
	assert.NotNil(t, vertexes["install B@2.0.0"].GetCompleted())
	assert.Empty(t, vertexes["install B@2.0.0"].GetError())

	require.NoError(t, recorder.Close())
	assert.True(t, w.closed)
}

func TestRecorder_CloseFailsPending(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w)

	recorder.OnAction(event(domain.EventInstalling, "C", "1.0.0"))
	assert.Nil(t, w.latest()["install C@1.0.0"].GetCompleted())

	require.NoError(t, recorder.Close())

	v := w.latest()["install C@1.0.0"]
	assert.NotNil(t, v.GetCompleted())
	assert.Equal(t, progrock.ErrInterrupted.Error(), v.GetError())
}

func TestRecorder_IgnoresUnmatchedPost(t *testing.T) {
	w := &captureWriter{}
	recorder := progrock.NewRecorder(w)

	recorder.OnAction(event(domain.EventInstalled, "D", "1.0.0"))
	assert.Empty(t, w.latest())
}
