package gamify

import (
	"testing"

	"github.com/skillsprint/skillsprint/internal/store"
)

func planTask(id string, milestoneIdx int, done bool) store.Task {
	return store.Task{ID: id, MilestoneIndex: milestoneIdx, MilestoneTitle: "M", Day: 1, Completed: done}
}

func TestOnTaskCompleted_AwardsXP(t *testing.T) {
	user := &store.User{Level: 1, XP: 40}
	tasks := []store.Task{planTask("t1", 0, false), planTask("t2", 0, false)}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t1")

	if res.XP != 50 || user.XP != 50 {
		t.Errorf("XP = %d/%d, want 50", res.XP, user.XP)
	}
	if res.LeveledUp || res.Level != 1 {
		t.Errorf("Level = %d leveledUp=%v, want 1/false", res.Level, res.LeveledUp)
	}
}

func TestOnTaskCompleted_LevelUpRollover(t *testing.T) {
	user := &store.User{Level: 1, XP: 95}
	tasks := []store.Task{planTask("t1", 0, false), planTask("t2", 0, false)}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t1")

	if !res.LeveledUp {
		t.Error("LeveledUp = false, want true")
	}
	if res.Level != 2 || res.XP != 5 {
		t.Errorf("Level/XP = %d/%d, want 2/5", res.Level, res.XP)
	}
}

func TestOnTaskCompleted_MilestoneBadge(t *testing.T) {
	user := &store.User{Level: 1}
	tasks := []store.Task{
		planTask("t1", 0, true),
		planTask("t2", 0, false), // just toggled, snapshot still stale
		planTask("t3", 1, false),
	}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t2")

	if !res.MilestoneComplete {
		t.Error("MilestoneComplete = false, want true (patched snapshot)")
	}
	if res.Badge != BadgeStone {
		t.Errorf("Badge = %q, want stone", res.Badge)
	}
	if res.SkillComplete {
		t.Error("SkillComplete = true with milestone 1 still open")
	}
	if !user.HasBadge("stone") {
		t.Error("badge not recorded on user")
	}
}

func TestOnTaskCompleted_BadgeIdempotent(t *testing.T) {
	user := &store.User{Level: 1, Badges: []string{"stone"}}
	tasks := []store.Task{planTask("t1", 0, false)}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t1")

	if res.Badge != "" {
		t.Errorf("Badge = %q, want none (already owned)", res.Badge)
	}
	if !res.MilestoneComplete {
		t.Error("MilestoneComplete = false, want true")
	}
	count := 0
	for _, b := range user.Badges {
		if b == "stone" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("stone appears %d times in badges, want exactly 1", count)
	}
}

func TestOnTaskCompleted_BadgeTierByMilestoneIndex(t *testing.T) {
	for idx, want := range []BadgeTier{BadgeStone, BadgeBronze, BadgeSilver, BadgeGold, BadgePlatinum} {
		user := &store.User{Level: 1}
		tasks := []store.Task{planTask("t1", idx, false)}

		res := Ledger{}.OnTaskCompleted(user, tasks, "t1")
		if res.Badge != want {
			t.Errorf("milestone %d badge = %q, want %q", idx, res.Badge, want)
		}
	}
}

func TestOnTaskCompleted_NoBadgeBeyondTierTable(t *testing.T) {
	user := &store.User{Level: 1}
	tasks := []store.Task{planTask("t1", 5, false)}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t1")
	if res.Badge != "" {
		t.Errorf("Badge = %q for milestone index 5, want none", res.Badge)
	}
	if !res.MilestoneComplete {
		t.Error("MilestoneComplete = false, want true")
	}
}

func TestOnTaskCompleted_SkillComplete(t *testing.T) {
	user := &store.User{Level: 1}
	tasks := []store.Task{
		planTask("t1", 0, true),
		planTask("t2", 1, true),
		planTask("t3", 1, false),
	}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t3")

	if !res.SkillComplete {
		t.Error("SkillComplete = false, want true")
	}
	if res.Badge != BadgeBronze {
		t.Errorf("Badge = %q, want bronze", res.Badge)
	}
}

func TestOnTaskCompleted_XPToNextLevelScales(t *testing.T) {
	// Level 2 requires 200 XP, so 195+10 stays at level 2.
	user := &store.User{Level: 2, XP: 185}
	tasks := []store.Task{planTask("t1", 0, false), planTask("t2", 0, false)}

	res := Ledger{}.OnTaskCompleted(user, tasks, "t1")
	if res.LeveledUp {
		t.Error("LeveledUp = true below the level-2 threshold")
	}
	if res.XP != 195 || res.Level != 2 {
		t.Errorf("Level/XP = %d/%d, want 2/195", res.Level, res.XP)
	}
}

func TestOnTaskCompleted_DoesNotMutateSnapshot(t *testing.T) {
	user := &store.User{Level: 1}
	tasks := []store.Task{planTask("t1", 0, false)}

	Ledger{}.OnTaskCompleted(user, tasks, "t1")
	if tasks[0].Completed {
		t.Error("caller's snapshot was mutated")
	}
}
