package queue

import (
	"testing"
	"time"
)

func TestClassifyUrgencySLADominates(t *testing.T) {
	// BREACHED yields CRITICAL regardless of priority or age.
	for _, prio := range []string{"", "LOW", "NORMAL", "HIGH", "EMERGENCY"} {
		for _, d := range []time.Duration{0, time.Hour, 100 * time.Hour} {
			if got := ClassifyUrgency(prio, d, SLABreached); got != UrgencyCritical {
				t.Fatalf("breached (%q, %v): got %s", prio, d, got)
			}
			if got := ClassifyUrgency(prio, d, SLAAtRisk); got != UrgencyHigh {
				t.Fatalf("at risk (%q, %v): got %s", prio, d, got)
			}
		}
	}
}

func TestClassifyUrgencyPriority(t *testing.T) {
	cases := []struct {
		priority string
		inState  time.Duration
		sla      SLAStatus
		want     Urgency
	}{
		{"EMERGENCY", 0, SLANone, UrgencyCritical},
		{"URGENT", 0, SLANone, UrgencyCritical},
		{"HIGH", 0, SLANone, UrgencyHigh},
		// Priority LOW overrides the 48h time escalation rule.
		{"LOW", 100 * time.Hour, SLANone, UrgencyLow},
		// Time-based escalation with no other signal.
		{"NORMAL", 49 * time.Hour, SLANone, UrgencyHigh},
		{"NORMAL", time.Hour, SLANone, UrgencyNormal},
		// Exactly at the threshold does not escalate.
		{"NORMAL", 48 * time.Hour, SLANone, UrgencyNormal},
		// Unknown priorities behave like NORMAL.
		{"WHENEVER", time.Hour, SLANone, UrgencyNormal},
		{"WHENEVER", 72 * time.Hour, SLANone, UrgencyHigh},
		{"", 0, SLANone, UrgencyNormal},
		// ON_TRACK does not short-circuit priority rules.
		{"EMERGENCY", 0, SLAOnTrack, UrgencyCritical},
		{"", time.Hour, SLAOnTrack, UrgencyNormal},
	}
	for _, c := range cases {
		if got := ClassifyUrgency(c.priority, c.inState, c.sla); got != c.want {
			t.Fatalf("ClassifyUrgency(%q, %v, %q) = %s, want %s", c.priority, c.inState, c.sla, got, c.want)
		}
	}
}
