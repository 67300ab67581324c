package queue

import "time"

// Normalize projects one raw record into the unified queue shape. The
// caller supplies now so a whole batch shares one clock snapshot; a
// record whose updatedAt lies in the future clamps to zero elapsed
// time rather than producing a negative duration.
func Normalize(raw RawItem, now time.Time) Item {
	inState := now.Sub(raw.UpdatedAt)
	if inState < 0 {
		inState = 0
	}
	return Item{
		ID:               CompositeID(raw.ItemType, raw.ItemID),
		Pillar:           PillarOf(raw.ItemType),
		ItemType:         raw.ItemType,
		ItemID:           raw.ItemID,
		ItemNumber:       raw.ItemNumber,
		OrganizationID:   raw.OrganizationID,
		OrganizationName: raw.OrganizationName,
		Title:            raw.Title,
		CurrentState:     raw.Status,
		Priority:         raw.Priority,
		RequiredAction:   ResolveAction(raw.ItemType, raw.Status),
		Urgency:          ClassifyUrgency(raw.Priority, inState, raw.SLAStatus),
		SLAStatus:        raw.SLAStatus,
		TimeInState:      inState,
		TimeInStateMs:    inState.Milliseconds(),
		TimeInStateHuman: FormatDuration(inState),
		PropertyName:     raw.PropertyName,
		AssociationName:  raw.AssociationName,
		Assigned:         raw.AssignedToID != "",
		AssigneeID:       raw.AssignedToID,
		AssigneeName:     raw.AssignedToName,
		CreatedAt:        raw.CreatedAt,
		UpdatedAt:        raw.UpdatedAt,
	}
}
