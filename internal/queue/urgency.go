package queue

import "time"

// StaleAfter is the time-in-state threshold past which an otherwise
// unremarkable item escalates to HIGH.
const StaleAfter = 48 * time.Hour

// ClassifyUrgency derives the urgency tier for an item from its SLA
// status, declared priority, and time in current state. Evaluation
// order is load-bearing: SLA signals dominate declared priority, and
// declared priority dominates time-based escalation. Every input
// combination resolves; unknown priorities behave like NORMAL.
func ClassifyUrgency(priority string, timeInState time.Duration, sla SLAStatus) Urgency {
	switch sla {
	case SLABreached:
		return UrgencyCritical
	case SLAAtRisk:
		return UrgencyHigh
	}
	switch priority {
	case "EMERGENCY", "URGENT":
		return UrgencyCritical
	case "HIGH":
		return UrgencyHigh
	case "LOW":
		return UrgencyLow
	}
	if timeInState > StaleAfter {
		return UrgencyHigh
	}
	return UrgencyNormal
}
