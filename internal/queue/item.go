package queue

import "time"

// ItemType identifies the origin subsystem of a work item.
type ItemType string

const (
	TypeConciergeCase ItemType = "CONCIERGE_CASE"
	TypeWorkOrder     ItemType = "WORK_ORDER"
	TypeViolation     ItemType = "VIOLATION"
	TypeARCRequest    ItemType = "ARC_REQUEST"
)

// Types lists the known item types in stable order.
var Types = []ItemType{TypeConciergeCase, TypeWorkOrder, TypeViolation, TypeARCRequest}

// KnownType reports whether t is one of the closed set of item types.
func KnownType(t ItemType) bool {
	switch t {
	case TypeConciergeCase, TypeWorkOrder, TypeViolation, TypeARCRequest:
		return true
	}
	return false
}

// Pillar is the top-level business area grouping related item kinds.
type Pillar string

const (
	// PillarAll is the zero filter value; it keeps every pillar.
	PillarAll       Pillar = ""
	PillarConcierge Pillar = "CONCIERGE"
	PillarCAM       Pillar = "CAM"
	// PillarContractor is part of the pillar domain but no item type
	// maps to it today.
	PillarContractor Pillar = "CONTRACTOR"
)

// PillarOf maps an item type to its pillar: concierge cases belong to
// CONCIERGE, every other kind to CAM.
func PillarOf(t ItemType) Pillar {
	if t == TypeConciergeCase {
		return PillarConcierge
	}
	return PillarCAM
}

// Urgency is the engine's normalized priority tier, distinct from the
// raw declared priority on the item.
type Urgency string

const (
	UrgencyCritical Urgency = "CRITICAL"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyNormal   Urgency = "NORMAL"
	UrgencyLow      Urgency = "LOW"
)

// urgencyRank orders tiers by severity for sorting; lower sorts first.
func urgencyRank(u Urgency) int {
	switch u {
	case UrgencyCritical:
		return 0
	case UrgencyHigh:
		return 1
	case UrgencyLow:
		return 3
	default:
		return 2
	}
}

// SLAStatus is an optional externally-tracked compliance state.
type SLAStatus string

const (
	// SLANone marks the absence of SLA tracking for an item.
	SLANone     SLAStatus = ""
	SLAOnTrack  SLAStatus = "ON_TRACK"
	SLAAtRisk   SLAStatus = "AT_RISK"
	SLABreached SLAStatus = "BREACHED"
)

// RawItem is the record shape produced by the origin subsystems. The
// engine consumes it and never mutates it; Status and Priority are
// free-form labels scoped to the owning subsystem.
type RawItem struct {
	ItemType         ItemType  `json:"itemType"`
	ItemID           string    `json:"itemId"`
	ItemNumber       string    `json:"itemNumber"`
	OrganizationID   string    `json:"organizationId"`
	OrganizationName string    `json:"organizationName"`
	Title            string    `json:"title"`
	Status           string    `json:"status"`
	Priority         string    `json:"priority"`
	PropertyName     string    `json:"propertyName"`
	AssociationName  string    `json:"associationName,omitempty"`
	AssignedToID     string    `json:"assignedToId,omitempty"`
	AssignedToName   string    `json:"assignedToName,omitempty"`
	SLAStatus        SLAStatus `json:"slaStatus,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Item is the unified work-queue projection of one RawItem. It exists
// only for the duration of a query; it is recomputed from the raw
// snapshot on every call and never persisted.
type Item struct {
	// ID is the composite key "{itemType}:{itemId}"; item types contain
	// no colon, so the encoding is injective across kinds.
	ID               string        `json:"id"`
	Pillar           Pillar        `json:"pillar"`
	ItemType         ItemType      `json:"itemType"`
	ItemID           string        `json:"itemId"`
	ItemNumber       string        `json:"itemNumber"`
	OrganizationID   string        `json:"organizationId"`
	OrganizationName string        `json:"organizationName"`
	Title            string        `json:"title"`
	CurrentState     string        `json:"currentState"`
	Priority         string        `json:"priority"`
	RequiredAction   string        `json:"requiredAction"`
	Urgency          Urgency       `json:"urgency"`
	SLAStatus        SLAStatus     `json:"slaStatus,omitempty"`
	// TimeInState is the in-process representation; the wire carries
	// TimeInStateMs because Duration would marshal as nanoseconds.
	TimeInState      time.Duration `json:"-"`
	TimeInStateMs    int64         `json:"timeInStateMs"`
	TimeInStateHuman string        `json:"timeInState"`
	PropertyName     string        `json:"propertyName"`
	AssociationName  string        `json:"associationName,omitempty"`

	// Assigned distinguishes "no assignee" from an assignee whose
	// display fields happen to be empty.
	Assigned     bool      `json:"assigned"`
	AssigneeID   string    `json:"assigneeId,omitempty"`
	AssigneeName string    `json:"assigneeName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CompositeID builds the unified item ID for an item type and source ID.
func CompositeID(t ItemType, itemID string) string {
	return string(t) + ":" + itemID
}
