package worklist

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keelhq/opsq/internal/queue"
	"github.com/keelhq/opsq/internal/runtime"
	"github.com/keelhq/opsq/pkg/id"
	"github.com/keelhq/opsq/pkg/log"
)

// ErrCallerRequired is returned when a query needs a staff identity
// (assigned-to-me) and none was supplied.
var ErrCallerRequired = errors.New("worklist: caller identity required")

// ErrInvalidFilter wraps CEL compile failures so transports can map
// them to a client error instead of a server fault.
var ErrInvalidFilter = errors.New("worklist: invalid filter expression")

// ErrUnknownValue wraps enum-typed request values outside their domain,
// such as an unrecognized pillar or urgency tier.
var ErrUnknownValue = errors.New("worklist: unknown value")

// Service answers unified-queue and summary queries and owns ingest
// validation for raw work items.
type Service struct {
	rt     *runtime.Runtime
	logger log.Logger
	idgen  *id.Generator
}

// NewService creates the worklist service over an open runtime.
func NewService(rt *runtime.Runtime, logger log.Logger) *Service {
	return &Service{
		rt:     rt,
		logger: logger.WithComponent("worklist"),
		idgen:  id.NewGenerator(),
	}
}

// ListRequest carries one queue query. Zero values mean "no filter";
// Limit zero means the configured default page size.
type ListRequest struct {
	Org            string
	Pillar         string
	Urgency        string
	State          string
	Filter         string
	AssignedToMe   bool
	UnassignedOnly bool
	Limit          int
	Cursor         string
}

// List fetches the raw snapshot for the request's org scope and runs
// it through the queue engine. callerID is the staff identity of the
// requester; it is required only when AssignedToMe is set.
func (s *Service) List(ctx context.Context, req ListRequest, callerID string) (queue.Page, error) {
	if req.AssignedToMe && callerID == "" {
		return queue.Page{}, ErrCallerRequired
	}
	pillar, err := parsePillar(req.Pillar)
	if err != nil {
		return queue.Page{}, err
	}
	urgency, err := parseUrgency(req.Urgency)
	if err != nil {
		return queue.Page{}, err
	}
	filter, err := newCELFilter(req.Filter)
	if err != nil {
		return queue.Page{}, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	raw, err := s.fetch(ctx, req.Org)
	if err != nil {
		return queue.Page{}, err
	}

	now := time.Now().UTC()
	page := queue.Build(raw, now, queue.Options{
		Pillar:         pillar,
		Urgency:        urgency,
		State:          req.State,
		AssignedToMe:   req.AssignedToMe,
		UnassignedOnly: req.UnassignedOnly,
		Match:          filter.Match(now),
		Limit:          s.clampLimit(req.Limit),
		Cursor:         req.Cursor,
	}, callerID)

	s.logger.Debug("queue query",
		log.Str("org", req.Org),
		log.Int("raw", len(raw)),
		log.Int("total", page.Summary.Total),
		log.Int("page", len(page.Items)),
		log.Bool("has_more", page.HasMore))
	return page, nil
}

func (s *Service) fetch(ctx context.Context, org string) ([]queue.RawItem, error) {
	if org == "" {
		org = s.rt.Config().DefaultOrganization
	}
	if org == "" {
		return s.rt.Items().ListAll(ctx)
	}
	return s.rt.Items().ListOrg(ctx, org)
}

func (s *Service) clampLimit(limit int) int {
	q := s.rt.Config().Queue
	if limit <= 0 {
		return q.DefaultPageSize
	}
	if q.MaxPageSize > 0 && limit > q.MaxPageSize {
		return q.MaxPageSize
	}
	return limit
}

func parsePillar(v string) (queue.Pillar, error) {
	switch p := queue.Pillar(strings.ToUpper(v)); p {
	case queue.PillarAll, queue.PillarConcierge, queue.PillarCAM, queue.PillarContractor:
		return p, nil
	default:
		return queue.PillarAll, fmt.Errorf("%w: pillar %q", ErrUnknownValue, v)
	}
}

func parseUrgency(v string) (queue.Urgency, error) {
	switch u := queue.Urgency(strings.ToUpper(v)); u {
	case "", queue.UrgencyCritical, queue.UrgencyHigh, queue.UrgencyNormal, queue.UrgencyLow:
		return u, nil
	default:
		return "", fmt.Errorf("%w: urgency %q", ErrUnknownValue, v)
	}
}

// Closed states per CAM family. A COMPLETED work order still needs a
// review-and-close pass, so it stays open for summary purposes.
var (
	closedWorkOrderStates = map[string]bool{"CLOSED": true, "CANCELLED": true}
	closedViolationStates = map[string]bool{"RESOLVED": true, "CLOSED": true, "DISMISSED": true}
	closedARCStates       = map[string]bool{"APPROVED": true, "DENIED": true, "WITHDRAWN": true, "CLOSED": true}
)

// Summary scans the org's items, buckets them into the pre-aggregated
// inputs the summary aggregator expects, and returns the dashboard
// counts. The urgency triple comes from the work-order family's
// declared priorities only; it is coarser than the per-item classifier
// used by List.
func (s *Service) Summary(ctx context.Context, org string) (queue.SummaryCounts, error) {
	raw, err := s.fetch(ctx, org)
	if err != nil {
		return queue.SummaryCounts{}, err
	}

	var cc queue.ConciergeCounts
	var cam queue.CAMCounts
	var pb queue.PriorityBuckets
	for _, it := range raw {
		switch it.ItemType {
		case queue.TypeConciergeCase:
			switch it.Status {
			case "INTAKE":
				cc.Intake++
			case "ASSESSMENT":
				cc.Assessment++
			case "IN_PROGRESS":
				cc.InProgress++
			case "PENDING_EXTERNAL", "PENDING_OWNER", "ON_HOLD":
				cc.Pending++
			}
		case queue.TypeWorkOrder:
			if closedWorkOrderStates[it.Status] {
				continue
			}
			cam.OpenWorkOrders++
			pb.OpenTotal++
			switch it.Priority {
			case "EMERGENCY":
				pb.Emergency++
			case "HIGH":
				pb.High++
			}
		case queue.TypeViolation:
			if !closedViolationStates[it.Status] {
				cam.OpenViolations++
			}
		case queue.TypeARCRequest:
			if !closedARCStates[it.Status] {
				cam.OpenARCRequests++
			}
		}
	}
	return queue.ComputeSummary(cc, cam, pb), nil
}

// Ingest validates and persists a batch of raw items. Items without a
// source ID are assigned a generated one. The batch commits atomically.
func (s *Service) Ingest(ctx context.Context, items []queue.RawItem) ([]queue.RawItem, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make([]queue.RawItem, 0, len(items))
	for i, it := range items {
		if !queue.KnownType(it.ItemType) {
			return nil, fmt.Errorf("worklist: item %d: unknown item type %q", i, it.ItemType)
		}
		if it.OrganizationID == "" {
			return nil, fmt.Errorf("worklist: item %d: organization id required", i)
		}
		if strings.ContainsRune(it.OrganizationID, '/') || strings.ContainsRune(it.ItemID, '/') {
			return nil, fmt.Errorf("worklist: item %d: ids must not contain '/'", i)
		}
		if it.Status == "" {
			return nil, fmt.Errorf("worklist: item %d: status required", i)
		}
		if it.ItemID == "" {
			it.ItemID = s.idgen.Next().String()
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = time.Now().UTC()
		}
		if it.UpdatedAt.IsZero() {
			it.UpdatedAt = it.CreatedAt
		}
		out = append(out, it)
	}
	if err := s.rt.Items().PutBatch(ctx, out); err != nil {
		return nil, err
	}
	s.logger.Info("ingested items", log.Int("count", len(out)))
	return out, nil
}

// Remove deletes one raw item by org, type, and source ID.
func (s *Service) Remove(ctx context.Context, org string, t queue.ItemType, itemID string) error {
	if !queue.KnownType(t) {
		return fmt.Errorf("worklist: unknown item type %q", t)
	}
	return s.rt.Items().Delete(ctx, org, t, itemID)
}
