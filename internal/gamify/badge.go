package gamify

// BadgeTier identifies a milestone-completion badge.
type BadgeTier string

const (
	BadgeStone    BadgeTier = "stone"
	BadgeBronze   BadgeTier = "bronze"
	BadgeSilver   BadgeTier = "silver"
	BadgeGold     BadgeTier = "gold"
	BadgePlatinum BadgeTier = "platinum"
)

// badgeTiers is ordered by milestone index: finishing the first milestone
// earns stone, the fifth platinum.
var badgeTiers = []BadgeTier{BadgeStone, BadgeBronze, BadgeSilver, BadgeGold, BadgePlatinum}

// TierForMilestone returns the badge for a zero-based milestone index, or ""
// when the index is beyond the tier table.
func TierForMilestone(idx int) BadgeTier {
	if idx < 0 || idx >= len(badgeTiers) {
		return ""
	}
	return badgeTiers[idx]
}

// DisplayTier returns the badge representing a plan's overall standing:
// the tier of the highest completed milestone, capped at platinum.
// completedMilestones is a count, not an index; zero returns "".
func DisplayTier(completedMilestones int) BadgeTier {
	if completedMilestones <= 0 {
		return ""
	}
	idx := completedMilestones - 1
	if idx >= len(badgeTiers) {
		idx = len(badgeTiers) - 1
	}
	return badgeTiers[idx]
}

// DisplayName returns a capitalized label for toasts and share messages.
func (t BadgeTier) DisplayName() string {
	switch t {
	case BadgeStone:
		return "Stone"
	case BadgeBronze:
		return "Bronze"
	case BadgeSilver:
		return "Silver"
	case BadgeGold:
		return "Gold"
	case BadgePlatinum:
		return "Platinum"
	default:
		return string(t)
	}
}

// Icon returns the display icon for the badge tier.
func (t BadgeTier) Icon() string {
	switch t {
	case BadgeStone:
		return "🪨"
	case BadgeBronze:
		return "🥉"
	case BadgeSilver:
		return "🥈"
	case BadgeGold:
		return "🥇"
	case BadgePlatinum:
		return "🏆"
	default:
		return "🏅"
	}
}
