package plangen

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are an expert coach who designs structured, practical learning plans. You respond with valid JSON only.`

// confidenceLabels maps the 1-5 confidence rating to the label embedded
// verbatim in the generation prompt.
var confidenceLabels = map[int]string{
	1: "Not at all confident",
	2: "Slightly confident",
	3: "Moderate",
	4: "Confident",
	5: "Very confident",
}

// ConfidenceLabel returns the prompt label for a 1-5 confidence rating,
// or "" when the rating is out of range.
func ConfidenceLabel(confidence int) string {
	return confidenceLabels[confidence]
}

// BuildPrompt produces the deterministic plan-generation instruction for a
// skill and confidence rating. The confidence label appears verbatim so the
// model can adjust pacing.
func BuildPrompt(skill string, confidence int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("You are an expert coach. Help a user master the skill: %q.\n", skill))
	b.WriteString(fmt.Sprintf("The user rated their confidence in this skill as: %s.\n", ConfidenceLabel(confidence)))
	b.WriteString(`Please adapt the milestones and tasks accordingly:
- If confidence is low, include more foundational explanations, slower pacing, and extra beginner resources.
- If confidence is high, focus on advanced topics, faster progression, and challenging exercises.
Break the journey into 5 major milestones, each milestone lasting 3-5 days. The milestones must be in this logical order: 1. Understanding the skill, 2. Ideation and Opportunity Recognition, 3. Planning (e.g., business plan or roadmap), 4. Financial Management (or equivalent for the skill), 5. Launching and Scaling (or advanced mastery/application). Number the milestones sequentially (Milestone 1, Milestone 2, etc.) and give each a clear, descriptive title and a short description.
For each milestone, list 3-5 daily tasks. For each daily task, provide an extremely detailed, step-by-step instructional guide of at least 10-12 sentences. Every single task description must include all of the following: (1) a practical exercise for the user to do, (2) an analogy to help understanding, (3) a real-world example, and (4) a reflection prompt for the user to journal about what they learned. These four elements must be present in every task description. Absolutely do NOT mention, reference, or repeat the resource link in the description, not even as 'see the link below' or similar.
For the 'link' field, only provide a real, working, high-quality reputable website (such as Wikipedia, official documentation, or major news sites) that is directly relevant to the task. Prefer reputable websites over YouTube, as these are less likely to be removed. Do NOT invent or make up links. Only include links you are certain exist and are relevant. If you cannot find a real link, leave the link field empty.
Respond with ONLY valid JSON, no explanation, no markdown, no code block, no extra text. The response must be a JSON array as described below, and nothing else.
Format: [{ "milestone": "Milestone 1: [title]", "description": "Milestone description", "tasks": [{ "day": 1, "description": "10-12 sentence detailed step-by-step instructional guide for the task (do NOT mention the link; must include a practical exercise, an analogy, a real-world example, and a reflection prompt)", "link": "https://..." }, ...] }, ...]`)

	return b.String()
}

// SystemPrompt returns the system message sent with every plan generation
// request.
func SystemPrompt() string {
	return planSystemPrompt
}
