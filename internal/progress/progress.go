package progress

import (
	"math"
	"sort"

	"github.com/skillsprint/skillsprint/internal/store"
)

// Percent computes a plan's completion percentage: round-half-up of
// 100 * completed / total. An empty task set is 0.
func Percent(tasks []store.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(tasks)) * 100))
}

// Pointer identifies the task a plan's summary card should display: the
// anchor task of the milestone the learner is currently working through.
type Pointer struct {
	// Task is the anchor: the highest-day completed task in the current
	// milestone, or its first task when nothing there is done yet.
	Task store.Task

	// MilestoneTitle is the current milestone's title.
	MilestoneTitle string

	// MilestoneDay is the anchor's 1-based rank within its milestone group.
	MilestoneDay int

	// Resuming is true when the anchor is a completed task, meaning the
	// learner is partway through the milestone rather than starting it.
	Resuming bool

	// AllDone is true when every task in the plan is complete; Task is then
	// the final task of the plan.
	AllDone bool
}

// NextTask resolves the display pointer for a plan's task set. It is a pure
// function of the snapshot: the same unmodified tasks always yield the same
// pointer. Returns false for an empty set.
func NextTask(tasks []store.Task) (*Pointer, bool) {
	if len(tasks) == 0 {
		return nil, false
	}

	sorted := make([]store.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].MilestoneTitle == sorted[j].MilestoneTitle {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].MilestoneTitle < sorted[j].MilestoneTitle
	})

	for _, t := range sorted {
		if !t.Completed {
			group := milestoneGroup(sorted, t.MilestoneTitle)
			anchor, resuming := anchorTask(group)
			return &Pointer{
				Task:           anchor,
				MilestoneTitle: anchor.MilestoneTitle,
				MilestoneDay:   rankIn(group, anchor.ID),
				Resuming:       resuming,
			}, true
		}
	}

	// Everything is complete: point at the last task of the plan.
	last := sorted[len(sorted)-1]
	group := milestoneGroup(sorted, last.MilestoneTitle)
	return &Pointer{
		Task:           last,
		MilestoneTitle: last.MilestoneTitle,
		MilestoneDay:   rankIn(group, last.ID),
		Resuming:       true,
		AllDone:        true,
	}, true
}

func milestoneGroup(sorted []store.Task, title string) []store.Task {
	var group []store.Task
	for _, t := range sorted {
		if t.MilestoneTitle == title {
			group = append(group, t)
		}
	}
	return group
}

// anchorTask picks the highest-day completed task in the group, or the
// group's first task when none is complete.
func anchorTask(group []store.Task) (store.Task, bool) {
	anchor := group[0]
	found := false
	for _, t := range group {
		if t.Completed && (!found || t.Day > anchor.Day) {
			anchor = t
			found = true
		}
	}
	return anchor, found
}

func rankIn(group []store.Task, id string) int {
	for i, t := range group {
		if t.ID == id {
			return i + 1
		}
	}
	return 0
}
