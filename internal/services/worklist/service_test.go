package worklist

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	cfgpkg "github.com/keelhq/opsq/internal/config"
	"github.com/keelhq/opsq/internal/queue"
	"github.com/keelhq/opsq/internal/runtime"
	pebblestore "github.com/keelhq/opsq/internal/store/pebble"
	"github.com/keelhq/opsq/internal/workitem"
	"github.com/keelhq/opsq/pkg/log"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	rt, err := runtime.Open(runtime.Options{
		DataDir: t.TempDir(),
		Fsync:   pebblestore.FsyncModeNever,
		Config:  cfgpkg.Default(),
	})
	if err != nil {
		t.Fatalf("open runtime: %v", err)
	}
	t.Cleanup(func() { rt.Close() })
	logger := log.NewLogger(log.WithLevel(log.ErrorLevel), log.WithOutput(log.NewWriterOutput(io.Discard)))
	return NewService(rt, logger)
}

func seed(t *testing.T, s *Service, items ...queue.RawItem) {
	t.Helper()
	if _, err := s.Ingest(context.Background(), items); err != nil {
		t.Fatalf("ingest: %v", err)
	}
}

func rawWorkOrder(id, org, status, priority string, age time.Duration) queue.RawItem {
	now := time.Now().UTC()
	return queue.RawItem{
		ItemType:       queue.TypeWorkOrder,
		ItemID:         id,
		ItemNumber:     "WO-" + id,
		OrganizationID: org,
		Title:          "work order " + id,
		Status:         status,
		Priority:       priority,
		PropertyName:   "Harborview",
		CreatedAt:      now.Add(-age - time.Hour),
		UpdatedAt:      now.Add(-age),
	}
}

func TestListOrgScopeAndOrdering(t *testing.T) {
	s := newTestService(t)
	seed(t, s,
		rawWorkOrder("wo-low", "org-1", "SUBMITTED", "LOW", time.Hour),
		rawWorkOrder("wo-em", "org-1", "SUBMITTED", "EMERGENCY", time.Minute),
		rawWorkOrder("wo-other", "org-2", "SUBMITTED", "EMERGENCY", time.Minute),
	)

	page, err := s.List(context.Background(), ListRequest{Org: "org-1"}, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("expected 2 items in org-1, got %d", len(page.Items))
	}
	if page.Items[0].ID != "WORK_ORDER:wo-em" {
		t.Fatalf("emergency item should sort first, got %s", page.Items[0].ID)
	}
	if page.Items[0].Urgency != queue.UrgencyCritical {
		t.Fatalf("emergency priority should classify critical, got %s", page.Items[0].Urgency)
	}
	if page.Items[0].RequiredAction != "triage and assign vendor" {
		t.Fatalf("unexpected action: %q", page.Items[0].RequiredAction)
	}
}

func TestListAssignedToMeRequiresCaller(t *testing.T) {
	s := newTestService(t)
	if _, err := s.List(context.Background(), ListRequest{AssignedToMe: true}, ""); !errors.Is(err, ErrCallerRequired) {
		t.Fatalf("expected ErrCallerRequired, got %v", err)
	}
}

func TestListRejectsUnknownFilters(t *testing.T) {
	s := newTestService(t)
	if _, err := s.List(context.Background(), ListRequest{Pillar: "FACILITIES"}, ""); err == nil {
		t.Fatalf("unknown pillar should be rejected")
	}
	if _, err := s.List(context.Background(), ListRequest{Urgency: "WHENEVER"}, ""); err == nil {
		t.Fatalf("unknown urgency should be rejected")
	}
	_, err := s.List(context.Background(), ListRequest{Filter: "no such =="}, "")
	if !errors.Is(err, ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestListFilterCaseInsensitive(t *testing.T) {
	s := newTestService(t)
	seed(t, s, rawWorkOrder("wo-1", "org-1", "SUBMITTED", "LOW", time.Hour))

	page, err := s.List(context.Background(), ListRequest{Org: "org-1", Pillar: "cam", Urgency: "low"}, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 1 {
		t.Fatalf("lowercase filters should normalize, got %d items", len(page.Items))
	}
}

func TestListCELFilter(t *testing.T) {
	s := newTestService(t)
	seed(t, s,
		rawWorkOrder("wo-1", "org-1", "SUBMITTED", "HIGH", time.Hour),
		rawWorkOrder("wo-2", "org-1", "IN_PROGRESS", "HIGH", time.Hour),
	)

	page, err := s.List(context.Background(), ListRequest{Org: "org-1", Filter: `state == "IN_PROGRESS"`}, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != 1 || page.Items[0].ItemID != "wo-2" {
		t.Fatalf("CEL filter not applied: %+v", page.Items)
	}
}

func TestListDefaultAndMaxPageSize(t *testing.T) {
	s := newTestService(t)
	items := make([]queue.RawItem, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, rawWorkOrder("wo-"+string(rune('a'+i/10))+string(rune('a'+i%10)), "org-1", "SUBMITTED", "LOW", time.Duration(i)*time.Minute))
	}
	seed(t, s, items...)

	page, err := s.List(context.Background(), ListRequest{Org: "org-1"}, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(page.Items) != cfgpkg.Default().Queue.DefaultPageSize {
		t.Fatalf("default page size not applied, got %d", len(page.Items))
	}
	if !page.HasMore || page.NextCursor == "" {
		t.Fatalf("expected more pages: hasMore=%v cursor=%q", page.HasMore, page.NextCursor)
	}

	rest, err := s.List(context.Background(), ListRequest{Org: "org-1", Limit: 1000, Cursor: page.NextCursor}, "")
	if err != nil {
		t.Fatalf("list rest: %v", err)
	}
	if len(rest.Items) != 30-len(page.Items) {
		t.Fatalf("cursor walk lost items: %d", len(rest.Items))
	}
	if rest.HasMore {
		t.Fatalf("no more pages expected")
	}
}

func TestSummaryBuckets(t *testing.T) {
	s := newTestService(t)
	concierge := func(id, status string) queue.RawItem {
		r := rawWorkOrder(id, "org-1", status, "LOW", time.Hour)
		r.ItemType = queue.TypeConciergeCase
		return r
	}
	violation := func(id, status string) queue.RawItem {
		r := rawWorkOrder(id, "org-1", status, "LOW", time.Hour)
		r.ItemType = queue.TypeViolation
		return r
	}
	arc := func(id, status string) queue.RawItem {
		r := rawWorkOrder(id, "org-1", status, "LOW", time.Hour)
		r.ItemType = queue.TypeARCRequest
		return r
	}
	seed(t, s,
		concierge("c-1", "INTAKE"),
		concierge("c-2", "ASSESSMENT"),
		concierge("c-3", "PENDING_OWNER"),
		concierge("c-4", "ON_HOLD"),
		rawWorkOrder("wo-1", "org-1", "SUBMITTED", "EMERGENCY", time.Hour),
		rawWorkOrder("wo-2", "org-1", "ASSIGNED", "HIGH", time.Hour),
		rawWorkOrder("wo-3", "org-1", "COMPLETED", "MEDIUM", time.Hour),
		rawWorkOrder("wo-4", "org-1", "CANCELLED", "EMERGENCY", time.Hour),
		violation("v-1", "OPEN"),
		violation("v-2", "RESOLVED"),
		arc("a-1", "SUBMITTED"),
	)

	sum, err := s.Summary(context.Background(), "org-1")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.ConciergeTotal != 4 {
		t.Fatalf("concierge total = %d, want 4", sum.ConciergeTotal)
	}
	if sum.Concierge.Pending != 2 {
		t.Fatalf("pending fold = %d, want 2", sum.Concierge.Pending)
	}
	// Cancelled work orders drop out; completed ones stay open.
	if sum.CAM.OpenWorkOrders != 3 {
		t.Fatalf("open work orders = %d, want 3", sum.CAM.OpenWorkOrders)
	}
	if sum.CAM.OpenViolations != 1 || sum.CAM.OpenARCRequests != 1 {
		t.Fatalf("cam counts: %+v", sum.CAM)
	}
	if sum.Urgency.Critical != 1 || sum.Urgency.High != 1 || sum.Urgency.Normal != 1 {
		t.Fatalf("urgency triple: %+v", sum.Urgency)
	}
}

func TestIngestValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Ingest(ctx, []queue.RawItem{{ItemType: "TICKET", ItemID: "x", OrganizationID: "o", Status: "OPEN"}}); err == nil {
		t.Fatalf("unknown type should fail")
	}
	if _, err := s.Ingest(ctx, []queue.RawItem{{ItemType: queue.TypeWorkOrder, ItemID: "x", Status: "OPEN"}}); err == nil {
		t.Fatalf("missing org should fail")
	}
	if _, err := s.Ingest(ctx, []queue.RawItem{{ItemType: queue.TypeWorkOrder, ItemID: "a/b", OrganizationID: "o", Status: "OPEN"}}); err == nil {
		t.Fatalf("slash in id should fail")
	}

	out, err := s.Ingest(ctx, []queue.RawItem{{ItemType: queue.TypeWorkOrder, OrganizationID: "o", Status: "SUBMITTED"}})
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if out[0].ItemID == "" {
		t.Fatalf("missing item id should be generated")
	}
	if out[0].CreatedAt.IsZero() || out[0].UpdatedAt.IsZero() {
		t.Fatalf("timestamps should be defaulted: %+v", out[0])
	}
}

func TestRemove(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seed(t, s, rawWorkOrder("wo-1", "org-1", "SUBMITTED", "LOW", time.Hour))

	if err := s.Remove(ctx, "org-1", queue.TypeWorkOrder, "wo-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := s.rt.Items().Get(ctx, "org-1", queue.TypeWorkOrder, "wo-1"); !errors.Is(err, workitem.ErrNotFound) {
		t.Fatalf("expected not found after remove, got %v", err)
	}
	if err := s.Remove(ctx, "org-1", "TICKET", "x"); err == nil {
		t.Fatalf("unknown type should fail")
	}
}
