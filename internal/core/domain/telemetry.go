package domain

import "strings"

// Phase represents the stage an install operation has reached.
type Phase string

const (
	// PhaseIdle indicates the operation has not started.
	PhaseIdle Phase = "idle"
	// PhaseGathering indicates dependency info is being collected from sources.
	PhaseGathering Phase = "gathering"
	// PhaseResolving indicates the solver is selecting a consistent package set.
	PhaseResolving Phase = "resolving"
	// PhasePlanning indicates the action list is being computed.
	PhasePlanning Phase = "planning"
	// PhaseExecuting indicates actions are being applied to the project.
	PhaseExecuting Phase = "executing"
	// PhaseCompleted indicates the operation finished successfully.
	PhaseCompleted Phase = "completed"
	// PhaseFailed indicates the operation stopped with an error.
	PhaseFailed Phase = "failed"
)

// IsTerminal checks if a phase is a terminal state (Completed, Failed).
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// NormalizePhase converts a string to a Phase, defaulting to idle if unknown.
func NormalizePhase(s string) Phase {
	switch p := Phase(strings.ToLower(s)); p {
	case PhaseGathering, PhaseResolving, PhasePlanning, PhaseExecuting, PhaseCompleted, PhaseFailed:
		return p
	default:
		return PhaseIdle
	}
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
