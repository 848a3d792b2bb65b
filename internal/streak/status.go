package streak

// MilestoneStatus describes one threshold's earned/locked state for display.
type MilestoneStatus struct {
	Threshold int          `json:"threshold"`
	Earned    bool         `json:"earned"`
	Badge     *EarnedBadge `json:"badge,omitempty"`
}

// GetMilestonesForType projects the earned/locked status of every threshold
// for one journal type. Always returns exactly five entries in ascending
// threshold order, regardless of progress. Pure projection, no mutation.
func GetMilestonesForType(journalType JournalType, earned BadgeSet) []MilestoneStatus {
	statuses := make([]MilestoneStatus, 0, len(Thresholds))
	for _, threshold := range Thresholds {
		status := MilestoneStatus{Threshold: threshold}
		if badge, ok := earned[BadgeID(journalType, threshold)]; ok {
			status.Earned = true
			status.Badge = &badge
		}
		statuses = append(statuses, status)
	}
	return statuses
}
