// Package progrock records plan execution as Progrock vertices.
package progrock

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/core/ports"
	"go.trai.ch/zerr"
)

// ErrInterrupted completes vertices whose action never finished.
var ErrInterrupted = zerr.New("action interrupted")

// Recorder implements ports.ActionListener by opening a vertex on each pre event
// and completing it on the matching post event.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu      sync.Mutex
	pending map[string]*progrock.VertexRecorder
}

var _ ports.ActionListener = (*Recorder)(nil)

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:       w,
		rec:     progrock.NewRecorder(w),
		pending: make(map[string]*progrock.VertexRecorder),
	}
}

// OnAction records the event.
func (r *Recorder) OnAction(event domain.ActionEvent) {
	name := operation(event.Kind) + " " + event.Identity.String()

	r.mu.Lock()
	defer r.mu.Unlock()

	if event.Kind.IsPre() {
		v := r.rec.Vertex(digest.FromString(event.Project+"/"+name), name)
		_, _ = fmt.Fprintf(v.Stdout(), "project %s\n", event.Project)
		r.pending[name] = v
		return
	}

	if v, ok := r.pending[name]; ok {
		v.Done(nil)
		delete(r.pending, name)
	}
}

// Close fails any vertex still open and closes the writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	for name, v := range r.pending {
		v.Done(ErrInterrupted)
		delete(r.pending, name)
	}
	r.mu.Unlock()

	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

func operation(kind domain.ActionEventKind) string {
	switch kind {
	case domain.EventUninstalling, domain.EventUninstalled:
		return "uninstall"
	default:
		return "install"
	}
}
