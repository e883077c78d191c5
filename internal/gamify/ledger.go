package gamify

import "github.com/skillsprint/skillsprint/internal/store"

// XPPerTask is the experience awarded for each newly completed task.
const XPPerTask = 10

// XPToNextLevel returns the experience needed to advance past the given
// level. Levels get progressively more expensive.
func XPToNextLevel(level int) int {
	return 100 * level
}

// Result reports everything a single task completion earned.
type Result struct {
	XP        int
	Level     int
	LeveledUp bool

	// Badge is the newly earned tier, or "" when the milestone was not
	// finished by this completion or its badge was already owned.
	Badge BadgeTier

	// MilestoneComplete is true when this completion finished its milestone,
	// whether or not a badge was newly awarded.
	MilestoneComplete bool

	// SkillComplete is true when this completion finished the whole plan.
	SkillComplete bool
}

// Ledger applies gamification rules to task completions. It only ever runs
// on a false→true transition; unchecking a task never claws anything back.
type Ledger struct{}

// OnTaskCompleted credits XP for the completed task, rolls levels over, and
// awards a milestone badge when the completion finishes its milestone. The
// just-completed task is patched into the local view of tasks before any
// derived check, so callers may pass the snapshot read before the write.
// user is mutated with the new XP, level, and badges; the caller persists.
func (Ledger) OnTaskCompleted(user *store.User, tasks []store.Task, completedTaskID string) Result {
	patched := patchCompleted(tasks, completedTaskID)

	res := Result{}
	user.XP += XPPerTask
	if user.Level < 1 {
		user.Level = 1
	}
	for user.XP >= XPToNextLevel(user.Level) {
		user.XP -= XPToNextLevel(user.Level)
		user.Level++
		res.LeveledUp = true
	}
	res.XP = user.XP
	res.Level = user.Level

	completed := findTask(patched, completedTaskID)
	if completed == nil {
		return res
	}

	if milestoneComplete(patched, completed.MilestoneIndex) {
		res.MilestoneComplete = true
		if tier := TierForMilestone(completed.MilestoneIndex); tier != "" && !user.HasBadge(string(tier)) {
			user.Badges = append(user.Badges, string(tier))
			res.Badge = tier
		}
		res.SkillComplete = allComplete(patched)
	}

	return res
}

// patchCompleted returns a copy of tasks with the given task marked complete.
func patchCompleted(tasks []store.Task, id string) []store.Task {
	out := make([]store.Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = true
		}
	}
	return out
}

func findTask(tasks []store.Task, id string) *store.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

func milestoneComplete(tasks []store.Task, milestoneIdx int) bool {
	found := false
	for _, t := range tasks {
		if t.MilestoneIndex != milestoneIdx {
			continue
		}
		found = true
		if !t.Completed {
			return false
		}
	}
	return found
}

func allComplete(tasks []store.Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}
