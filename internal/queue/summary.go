package queue

// ConciergeCounts are pre-aggregated concierge case counts by
// sub-state. Pending folds together the externally-blocked states
// (PENDING_EXTERNAL, PENDING_OWNER, ON_HOLD).
type ConciergeCounts struct {
	Intake     int `json:"intake"`
	Assessment int `json:"assessment"`
	InProgress int `json:"inProgress"`
	Pending    int `json:"pending"`
}

// CAMCounts are open-item counts for the CAM pillar, one per item
// family. No urgency logic applies here.
type CAMCounts struct {
	OpenWorkOrders  int `json:"openWorkOrders"`
	OpenViolations  int `json:"openViolations"`
	OpenARCRequests int `json:"openArcRequests"`
}

// PriorityBuckets are raw priority-bucketed counts for the work-order
// family, the only family feeding the summary urgency triple.
type PriorityBuckets struct {
	Emergency int `json:"emergency"`
	High      int `json:"high"`
	OpenTotal int `json:"openTotal"`
}

// UrgencyTriple is the dashboard's coarse urgency breakdown.
type UrgencyTriple struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Normal   int `json:"normal"`
}

// SummaryCounts are the cross-pillar dashboard tile counts.
type SummaryCounts struct {
	ConciergeTotal int             `json:"conciergeTotal"`
	Concierge      ConciergeCounts `json:"concierge"`
	CAM            CAMCounts       `json:"cam"`
	Urgency        UrgencyTriple   `json:"urgency"`
}

// ComputeSummary produces dashboard tile counts from pre-aggregated
// inputs. This path has no per-item state or time data, so unlike
// ClassifyUrgency its urgency triple is a deliberately cheaper
// approximation over one family's declared priorities: EMERGENCY maps
// to critical, HIGH to high, and the remainder of the open total to
// normal.
func ComputeSummary(cc ConciergeCounts, cam CAMCounts, pb PriorityBuckets) SummaryCounts {
	normal := pb.OpenTotal - pb.Emergency - pb.High
	if normal < 0 {
		normal = 0
	}
	return SummaryCounts{
		ConciergeTotal: cc.Intake + cc.Assessment + cc.InProgress + cc.Pending,
		Concierge:      cc,
		CAM:            cam,
		Urgency: UrgencyTriple{
			Critical: pb.Emergency,
			High:     pb.High,
			Normal:   normal,
		},
	}
}
