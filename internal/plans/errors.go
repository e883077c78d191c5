package plans

import "fmt"

// ValidationError rejects a request before any network or storage call.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

// DuplicateError indicates the user already has a plan for this skill. It
// carries the existing plan so the caller can redirect the user to it.
type DuplicateError struct {
	Skill    string
	PlanID   string
	Progress int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("already learning %q (%d%% through it)", e.Skill, e.Progress)
}

// GenerationError indicates the AI call or the parsing of its output failed.
// RawText holds the model's raw response when one was received, for
// diagnostics. Nothing is persisted when generation fails.
type GenerationError struct {
	RawText string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("plan generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// PersistenceError indicates a storage write failed. For plan generation the
// service has already run compensating cleanup by the time this surfaces;
// for task toggles the task flag has been rolled back.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// LedgerError indicates the task completion itself was persisted but the
// resulting XP/badge update was not. The completion stands; only the
// gamification write needs retrying.
type LedgerError struct {
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("task saved, but recording rewards failed: %v", e.Err)
}

func (e *LedgerError) Unwrap() error { return e.Err }
