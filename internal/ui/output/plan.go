package output

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/pkgr/internal/core/domain"
	"go.trai.ch/pkgr/internal/engine/installer"
	"go.trai.ch/pkgr/internal/ui/style"
)

// painter applies lipgloss styles unless the renderer has no colors.
type painter struct {
	r *lipgloss.Renderer
}

func (p painter) paint(color lipgloss.Color, s string) string {
	if p.r.ColorProfile() == termenv.Ascii {
		return s
	}
	return p.r.NewStyle().Foreground(color).Render(s)
}

// WritePlan renders plan for the named project.
func WritePlan(w io.Writer, project string, plan *installer.Plan) error {
	p := painter{r: NewRenderer(w)}

	var b strings.Builder
	if plan == nil || plan.Len() == 0 {
		fmt.Fprintf(&b, "%s: nothing to do\n", project)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Plan for %s: %d to uninstall, %d to install\n",
		project, len(plan.Uninstalls()), len(plan.Installs()))
	for _, a := range plan.Actions {
		switch a.Kind {
		case installer.ActionUninstall:
			b.WriteString("  " + p.paint(style.Removed, style.Uninstall+" "+a.Identity.String()) + "\n")
		case installer.ActionInstall:
			line := "  " + p.paint(style.Added, style.Install+" "+a.Identity.String())
			if a.Source != nil {
				line += " " + p.paint(style.Muted, "("+a.Source.Name()+")")
			}
			b.WriteString(line + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// ActionPrinter writes one line per completed action.
type ActionPrinter struct {
	mu sync.Mutex
	w  io.Writer
	p  painter
}

// NewActionPrinter creates an ActionPrinter writing to w.
func NewActionPrinter(w io.Writer) *ActionPrinter {
	return &ActionPrinter{w: w, p: painter{r: NewRenderer(w)}}
}

// OnAction implements ports.ActionListener.
func (a *ActionPrinter) OnAction(event domain.ActionEvent) {
	if event.Kind.IsPre() {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	icon := a.p.paint(style.Added, style.Done)
	_, _ = fmt.Fprintf(a.w, "%s %s %s\n", icon, event.Kind, event.Identity)
}
