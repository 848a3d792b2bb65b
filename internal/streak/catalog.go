package streak

// BadgeInfo is the display metadata for one (journal type, threshold) badge.
// Reflective marks the 90-day capstone of each type, which the client renders
// contemplatively instead of with the usual celebration.
type BadgeInfo struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Reflective  bool   `json:"reflective,omitempty"`
}

// BadgeDisplayInfo is BadgeInfo annotated with a human-readable type label.
type BadgeDisplayInfo struct {
	BadgeInfo
	TypeLabel string `json:"type_label"`
}

var typeLabels = map[JournalType]string{
	TypeJourney: "Daily Journey",
	TypeMood:    "Mood Check-In",
	TypeFlip:    "Thought Flip",
	TypeOverall: "All Journaling",
}

// badgeCatalog covers every (type, threshold) pair. A missing entry is a
// defect caught by the catalog totality test, not a condition handled at
// runtime.
var badgeCatalog = map[JournalType]map[int]BadgeInfo{
	TypeJourney: {
		7:  {Title: "First Week of Words", Icon: "🌱", Description: "Seven days of showing up for your daily journey."},
		14: {Title: "Fortnight of Reflection", Icon: "✍️", Description: "Two full weeks of guided journaling, back to back."},
		30: {Title: "Thirty Days Deep", Icon: "📖", Description: "A whole month of daily journey entries."},
		60: {Title: "Two-Month Voyager", Icon: "🧭", Description: "Sixty consecutive days of writing your way forward."},
		90: {Title: "The Quiet Milestone", Icon: "🕯️", Description: "Ninety days of daily journeys. Take a moment to read where you started.", Reflective: true},
	},
	TypeMood: {
		7:  {Title: "Week of Check-Ins", Icon: "🌤️", Description: "You named how you felt every day for a week."},
		14: {Title: "Two Weeks Tuned In", Icon: "🎐", Description: "Fourteen straight days of mood awareness."},
		30: {Title: "A Month of Awareness", Icon: "🌗", Description: "Thirty days of noticing, without skipping one."},
		60: {Title: "Sixty Days of Feeling", Icon: "🌊", Description: "Two months of honest daily check-ins."},
		90: {Title: "Still Waters", Icon: "🪞", Description: "Ninety days of mood check-ins. Look back at how the weather changed.", Reflective: true},
	},
	TypeFlip: {
		7:  {Title: "Seven Reframes", Icon: "🔄", Description: "A week of flipping thoughts on their head."},
		14: {Title: "Fourteen Fresh Angles", Icon: "💡", Description: "Two weeks of finding another way to see it."},
		30: {Title: "Thirty Turnarounds", Icon: "🦋", Description: "A month of daily reframing practice."},
		60: {Title: "Sixty Shifts", Icon: "⚖️", Description: "Sixty days of balancing the story you tell yourself."},
		90: {Title: "The Long View", Icon: "🏔️", Description: "Ninety days of reframes. Notice which thoughts stopped needing one.", Reflective: true},
	},
	TypeOverall: {
		7:  {Title: "One Week Streak", Icon: "⭐", Description: "Seven consecutive days of journaling, any kind."},
		14: {Title: "Two Week Streak", Icon: "🔥", Description: "Fourteen days in a row across all your practices."},
		30: {Title: "One Month Strong", Icon: "🏅", Description: "Thirty consecutive days of keeping the habit."},
		60: {Title: "Two Months Strong", Icon: "🏆", Description: "Sixty days without missing one."},
		90: {Title: "Ninety Days of Showing Up", Icon: "🌌", Description: "Three months, every single day. That is who you are now.", Reflective: true},
	},
}

// GetBadgeDisplayInfo looks up the display metadata for an earned badge.
func GetBadgeDisplayInfo(badge EarnedBadge) BadgeDisplayInfo {
	return BadgeDisplayInfo{
		BadgeInfo: badgeCatalog[badge.JournalType][badge.Threshold],
		TypeLabel: typeLabels[badge.JournalType],
	}
}
