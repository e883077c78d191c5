package plangen

// Milestone is one named phase of a generated learning plan.
type Milestone struct {
	Title       string `json:"milestone"`
	Description string `json:"description"`
	Tasks       []Task `json:"tasks"`
}

// Task is a single day's actionable item within a milestone.
type Task struct {
	Day         int    `json:"day"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// MaxMilestones caps a plan at the five phases the generation prompt asks
// for. The badge tier table only covers five milestones, so a sixth is
// rejected rather than silently left badge-less.
const MaxMilestones = 5

// TaskCount returns the total number of tasks across all milestones.
func TaskCount(milestones []Milestone) int {
	n := 0
	for _, m := range milestones {
		n += len(m.Tasks)
	}
	return n
}
