package queue

// actionTable maps each item type's raw status to the next staff
// action. Each item type declares its own fallback under the empty
// status key, so an unknown status still resolves within its kind.
var actionTable = map[ItemType]map[string]string{
	TypeConciergeCase: {
		"INTAKE":           "assess and plan",
		"ASSESSMENT":       "finish assessment and start work",
		"IN_PROGRESS":      "continue resolution",
		"PENDING_EXTERNAL": "follow up externally",
		"PENDING_OWNER":    "await/follow up with owner",
		"ON_HOLD":          "review hold and resume",
		"":                 "review case",
	},
	TypeWorkOrder: {
		"SUBMITTED":   "triage and assign vendor",
		"TRIAGED":     "authorize",
		"AUTHORIZED":  "assign vendor",
		"ASSIGNED":    "schedule",
		"SCHEDULED":   "monitor for completion",
		"IN_PROGRESS": "monitor progress",
		"COMPLETED":   "review and close",
		"":            "review work order",
	},
	TypeViolation: {
		"OPEN":              "send initial notice",
		"NOTICE_SENT":       "monitor cure period",
		"HEARING_SCHEDULED": "prepare for hearing",
		"ESCALATED":         "review escalation",
		"":                  "review violation",
	},
	TypeARCRequest: {
		"SUBMITTED":    "review application",
		"UNDER_REVIEW": "complete review",
		"PENDING_INFO": "follow up for info",
		"":             "review request",
	},
}

// genericAction is the fallback for item types outside the known set.
const genericAction = "review item"

// ResolveAction returns the short imperative next staff action for an
// item type and status. Total over its domain: an unknown status falls
// back to the item type's own default, an unknown item type to a fully
// generic one.
func ResolveAction(t ItemType, status string) string {
	table, ok := actionTable[t]
	if !ok {
		return genericAction
	}
	if action, ok := table[status]; ok {
		return action
	}
	return table[""]
}
