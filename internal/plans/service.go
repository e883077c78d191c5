package plans

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/skillsprint/skillsprint/internal/gamify"
	"github.com/skillsprint/skillsprint/internal/llm"
	"github.com/skillsprint/skillsprint/internal/plangen"
	"github.com/skillsprint/skillsprint/internal/progress"
	"github.com/skillsprint/skillsprint/internal/store"
)

// Generation request shape. Plans are long documents, so the token budget is
// generous; a little temperature keeps milestone content from being samey.
const (
	genMaxTokens   = 8192
	genTemperature = 0.7
)

// Service owns the plan lifecycle: generation, task toggling, cancellation,
// and the dashboard summary. All storage goes through the narrow store
// interfaces so tests can substitute failing fakes.
type Service struct {
	provider llm.Provider
	users    UserStore
	plans    PlanStore
	tasks    TaskStore

	ledger  gamify.Ledger
	tracker gamify.Tracker
}

// NewService wires a Service over an LLM provider and the three stores.
func NewService(provider llm.Provider, users UserStore, plans PlanStore, tasks TaskStore) *Service {
	return &Service{
		provider: provider,
		users:    users,
		plans:    plans,
		tasks:    tasks,
	}
}

// GeneratedPlan is the outcome of a successful Generate call.
type GeneratedPlan struct {
	Plan       store.Plan
	Milestones []plangen.Milestone
	Tasks      []store.Task
}

// Generate creates a learning plan for a skill. It validates input, rejects
// duplicate skills, makes a single provider call, parses the result, and
// persists the plan and its tasks. Persistence is all-or-nothing: a failure
// partway through deletes whatever was already written, so a visible plan is
// never a partial one. The provider call is made exactly once here; transient
// retry is the provider middleware's job.
func (s *Service) Generate(ctx context.Context, userID, skill string, confidence int) (*GeneratedPlan, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, &ValidationError{Reason: "skill name is required"}
	}
	if plangen.ConfidenceLabel(confidence) == "" {
		return nil, &ValidationError{Reason: "confidence must be between 1 and 5"}
	}

	existing, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "listing plans", Err: err}
	}
	for _, p := range existing {
		if strings.EqualFold(strings.TrimSpace(p.Skill), skill) {
			return nil, &DuplicateError{Skill: p.Skill, PlanID: p.ID, Progress: p.Progress}
		}
	}

	resp, err := s.provider.Generate(llm.WithPurpose(ctx, "plan-generation"), llm.Request{
		System:      plangen.SystemPrompt(),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: plangen.BuildPrompt(skill, confidence)}},
		Schema:      plangen.PlanSchema,
		MaxTokens:   genMaxTokens,
		Temperature: genTemperature,
	})
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	raw := string(resp.Content)
	milestones, err := plangen.Parse(raw)
	if err != nil {
		return nil, &GenerationError{RawText: raw, Err: err}
	}

	// The plans table references users, so make sure the row exists.
	if _, err := s.users.GetOrCreate(ctx, userID, userID); err != nil {
		return nil, &PersistenceError{Op: "reading user", Err: err}
	}

	plan := store.Plan{
		ID:         uuid.NewString(),
		UserID:     userID,
		Skill:      skill,
		Confidence: confidence,
		CreatedAt:  time.Now().UTC(),
		Progress:   0,
	}
	if err := s.plans.Insert(ctx, plan); err != nil {
		return nil, &PersistenceError{Op: "saving plan", Err: err}
	}

	var saved []store.Task
	for i, m := range milestones {
		for _, t := range m.Tasks {
			task := store.Task{
				ID:             uuid.NewString(),
				PlanID:         plan.ID,
				MilestoneIndex: i,
				MilestoneTitle: m.Title,
				Day:            t.Day,
				Description:    t.Description,
				ResourceLink:   t.Link,
			}
			if err := s.tasks.Insert(ctx, task); err != nil {
				s.cleanupPlan(ctx, plan.ID)
				return nil, &PersistenceError{Op: "saving tasks", Err: err}
			}
			saved = append(saved, task)
		}
	}

	return &GeneratedPlan{Plan: plan, Milestones: milestones, Tasks: saved}, nil
}

// cleanupPlan removes a partially written plan. It runs even when the
// caller's context is already cancelled; leaving an orphan plan behind is
// worse than a slow abort.
func (s *Service) cleanupPlan(ctx context.Context, planID string) {
	ctx = context.WithoutCancel(ctx)
	if err := s.tasks.DeleteByPlan(ctx, planID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cleanup of plan %s tasks failed: %v\n", planID, err)
		return
	}
	if err := s.plans.Delete(ctx, planID); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cleanup of plan %s failed: %v\n", planID, err)
	}
}

// ToggleResult reports the outcome of a task toggle.
type ToggleResult struct {
	Task     store.Task
	Progress int

	// Ledger is set only when the toggle was a fresh completion and the
	// reward write succeeded.
	Ledger *gamify.Result
}

// ToggleTask flips a task's completion flag and recomputes the plan's
// progress. It always re-reads the persisted task list first so concurrent
// toggles on the same plan never work from a stale aggregate. If the
// progress write fails the task flag is restored, keeping displayed state in
// line with storage. Rewards run only on a false→true transition; a failed
// reward write leaves the completion standing and returns LedgerError
// alongside the partial result.
func (s *Service) ToggleTask(ctx context.Context, userID, planID, taskID string, completed bool) (*ToggleResult, error) {
	tasks, err := s.tasks.ListByPlan(ctx, planID)
	if err != nil {
		return nil, &PersistenceError{Op: "reading tasks", Err: err}
	}

	var target *store.Task
	for i := range tasks {
		if tasks[i].ID == taskID {
			target = &tasks[i]
			break
		}
	}
	if target == nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("no task %s in plan %s", taskID, planID)}
	}
	prior := target.Completed

	if err := s.tasks.SetCompleted(ctx, taskID, completed); err != nil {
		return nil, &PersistenceError{Op: "updating task", Err: err}
	}

	patched := make([]store.Task, len(tasks))
	copy(patched, tasks)
	for i := range patched {
		if patched[i].ID == taskID {
			patched[i].Completed = completed
		}
	}
	pct := progress.Percent(patched)

	if err := s.plans.UpdateProgress(ctx, planID, pct); err != nil {
		if rbErr := s.tasks.SetCompleted(context.WithoutCancel(ctx), taskID, prior); rbErr != nil {
			fmt.Fprintf(os.Stderr, "warning: rollback of task %s failed: %v\n", taskID, rbErr)
		}
		return nil, &PersistenceError{Op: "updating progress", Err: err}
	}

	toggled := *target
	toggled.Completed = completed
	result := &ToggleResult{Task: toggled, Progress: pct}

	if prior || !completed {
		return result, nil
	}

	user, err := s.users.GetOrCreate(ctx, userID, userID)
	if err != nil {
		return result, &LedgerError{Err: err}
	}
	ledger := s.ledger.OnTaskCompleted(user, tasks, taskID)
	if err := s.users.UpdateStats(ctx, user.ID, user.XP, user.Level, user.Badges); err != nil {
		return result, &LedgerError{Err: err}
	}
	result.Ledger = &ledger
	return result, nil
}

// Cancel deletes a plan and all of its tasks, tasks first so a failure
// cannot leave orphan tasks under a missing plan.
func (s *Service) Cancel(ctx context.Context, planID string) error {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return &PersistenceError{Op: "reading plan", Err: err}
	}
	if plan == nil {
		return &ValidationError{Reason: fmt.Sprintf("no plan %s", planID)}
	}
	if err := s.tasks.DeleteByPlan(ctx, planID); err != nil {
		return &PersistenceError{Op: "deleting tasks", Err: err}
	}
	if err := s.plans.Delete(ctx, planID); err != nil {
		return &PersistenceError{Op: "deleting plan", Err: err}
	}
	return nil
}

// PlanSummary is one dashboard card.
type PlanSummary struct {
	Plan                store.Plan
	Tasks               []store.Task
	Progress            int
	Pointer             *progress.Pointer
	CompletedMilestones int
	Badge               gamify.BadgeTier
}

// Summary is the full dashboard state for a user.
type Summary struct {
	User  *store.User
	Visit gamify.Visit
	Plans []PlanSummary
}

// Dashboard records the daily visit for the streak and assembles the per-plan
// summary cards: live progress, the task pointer to resume from, and the
// badge tier for the furthest completed milestone.
func (s *Service) Dashboard(ctx context.Context, userID string) (*Summary, error) {
	user, err := s.users.GetOrCreate(ctx, userID, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "reading user", Err: err}
	}

	visit := s.tracker.OnVisit(user)
	if visit.Changed {
		if err := s.users.UpdateStreak(ctx, user.ID, visit.Streak, visit.LastActive); err != nil {
			return nil, &PersistenceError{Op: "updating streak", Err: err}
		}
	}

	planList, err := s.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "listing plans", Err: err}
	}

	summary := &Summary{User: user, Visit: visit}
	for _, p := range planList {
		tasks, err := s.tasks.ListByPlan(ctx, p.ID)
		if err != nil {
			return nil, &PersistenceError{Op: "reading tasks", Err: err}
		}
		completed := completedMilestones(tasks)
		ptr, _ := progress.NextTask(tasks)
		summary.Plans = append(summary.Plans, PlanSummary{
			Plan:                p,
			Tasks:               tasks,
			Progress:            progress.Percent(tasks),
			Pointer:             ptr,
			CompletedMilestones: completed,
			Badge:               gamify.DisplayTier(completed),
		})
	}
	return summary, nil
}

// Plan returns one plan with its tasks, for the detail view.
func (s *Service) Plan(ctx context.Context, planID string) (*PlanSummary, error) {
	plan, err := s.plans.Get(ctx, planID)
	if err != nil {
		return nil, &PersistenceError{Op: "reading plan", Err: err}
	}
	if plan == nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("no plan %s", planID)}
	}
	tasks, err := s.tasks.ListByPlan(ctx, planID)
	if err != nil {
		return nil, &PersistenceError{Op: "reading tasks", Err: err}
	}
	completed := completedMilestones(tasks)
	ptr, _ := progress.NextTask(tasks)
	return &PlanSummary{
		Plan:                *plan,
		Tasks:               tasks,
		Progress:            progress.Percent(tasks),
		Pointer:             ptr,
		CompletedMilestones: completed,
		Badge:               gamify.DisplayTier(completed),
	}, nil
}

// completedMilestones counts milestone groups whose tasks are all complete.
func completedMilestones(tasks []store.Task) int {
	total := make(map[int]int)
	done := make(map[int]int)
	for _, t := range tasks {
		total[t.MilestoneIndex]++
		if t.Completed {
			done[t.MilestoneIndex]++
		}
	}
	n := 0
	for idx, count := range total {
		if done[idx] == count {
			n++
		}
	}
	return n
}
