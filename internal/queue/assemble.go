package queue

import (
	"sort"
	"time"
)

// Options control filtering, ordering, and pagination of a queue build.
type Options struct {
	// Pillar keeps only items of one pillar; PillarAll keeps every pillar.
	Pillar Pillar
	// Urgency filters the sorted set by tier; empty keeps every tier.
	// Unlike the other filters it is applied after sorting.
	Urgency Urgency
	// State keeps only items whose raw status matches exactly.
	State string
	// AssignedToMe keeps only items assigned to the calling staff ID.
	AssignedToMe bool
	// UnassignedOnly keeps only items with no assignee. Independent of
	// AssignedToMe; both may be requested.
	UnassignedOnly bool
	// Match is an optional extra predicate applied with the pre-sort
	// filters. The service layer compiles filter expressions into it.
	Match func(Item) bool
	// Limit is the page size; zero or negative returns the whole set.
	Limit int
	// Cursor resumes after the item with this ID. An unknown cursor
	// restarts from the top of the set.
	Cursor string
}

// Tally summarizes the filtered, sorted set before pagination
// truncation, so the counts describe the full result and not one page.
type Tally struct {
	Total      int `json:"total"`
	Critical   int `json:"critical"`
	High       int `json:"high"`
	Normal     int `json:"normal"`
	Low        int `json:"low"`
	Unassigned int `json:"unassigned"`
}

// Page is one query's worth of the unified queue.
type Page struct {
	Items   []Item `json:"items"`
	Summary Tally  `json:"summary"`
	HasMore bool   `json:"hasMore"`
	// NextCursor is the ID of the last returned item when more remain,
	// otherwise empty.
	NextCursor string `json:"nextCursor,omitempty"`
}

// Build normalizes a raw batch and filters, sorts, tallies, and
// paginates it into a Page. Identical inputs, including now, produce
// identical output; the engine holds no state between calls.
func Build(raw []RawItem, now time.Time, opts Options, callerID string) Page {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		it := Normalize(r, now)
		if opts.Pillar != PillarAll && it.Pillar != opts.Pillar {
			continue
		}
		if opts.State != "" && it.CurrentState != opts.State {
			continue
		}
		if opts.AssignedToMe && it.AssigneeID != callerID {
			continue
		}
		if opts.UnassignedOnly && it.Assigned {
			continue
		}
		if opts.Match != nil && !opts.Match(it) {
			continue
		}
		items = append(items, it)
	}

	// Most severe tier first, oldest-in-state first within a tier.
	// Stable sort keeps source order for full ties.
	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := urgencyRank(items[i].Urgency), urgencyRank(items[j].Urgency)
		if ri != rj {
			return ri < rj
		}
		return items[i].TimeInState > items[j].TimeInState
	})

	if opts.Urgency != "" {
		filtered := make([]Item, 0, len(items))
		for _, it := range items {
			if it.Urgency == opts.Urgency {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}

	var tally Tally
	for _, it := range items {
		tally.Total++
		switch it.Urgency {
		case UrgencyCritical:
			tally.Critical++
		case UrgencyHigh:
			tally.High++
		case UrgencyLow:
			tally.Low++
		default:
			tally.Normal++
		}
		if !it.Assigned {
			tally.Unassigned++
		}
	}

	start := 0
	if opts.Cursor != "" {
		for i, it := range items {
			if it.ID == opts.Cursor {
				start = i + 1
				break
			}
		}
	}
	end := len(items)
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}

	page := Page{Items: items[start:end], Summary: tally}
	if end < len(items) && len(page.Items) > 0 {
		page.HasMore = true
		page.NextCursor = page.Items[len(page.Items)-1].ID
	}
	return page
}
