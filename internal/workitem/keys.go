package workitem

import (
	"fmt"

	"github.com/keelhq/opsq/internal/queue"
)

// ItemKey returns the storage key for one work item.
// Format: org/{org}/item/{itemType}/{itemId}
func ItemKey(org string, t queue.ItemType, itemID string) []byte {
	return []byte(fmt.Sprintf("org/%s/item/%s/%s", org, t, itemID))
}

// OrgPrefix returns the scan prefix for all items of one organization.
// Format: org/{org}/item/
func OrgPrefix(org string) []byte {
	return []byte(fmt.Sprintf("org/%s/item/", org))
}

// AllPrefix returns the scan prefix covering every organization.
func AllPrefix() []byte {
	return []byte("org/")
}

// upperBound returns the exclusive upper bound for a prefix scan.
func upperBound(prefix []byte) []byte {
	return append(append([]byte{}, prefix...), 0xFF)
}
