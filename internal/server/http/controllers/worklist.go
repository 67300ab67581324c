package controllers

import (
	"errors"
	"net/http"

	"github.com/keelhq/opsq/internal/runtime"
	worklistsvc "github.com/keelhq/opsq/internal/services/worklist"
)

// WorklistController handles queue query endpoints.
//
// It translates HTTP query parameters into service requests and maps
// service errors onto HTTP status codes. The staff identity of the
// caller arrives in the configured staff header; upstream layers are
// expected to have authenticated it.
type WorklistController struct {
	rt  *runtime.Runtime
	svc *worklistsvc.Service
}

// NewWorklistController creates a new worklist controller.
func NewWorklistController(rt *runtime.Runtime, svc *worklistsvc.Service) *WorklistController {
	return &WorklistController{rt: rt, svc: svc}
}

// RegisterRoutes registers queue routes with the given mux.
//
// This method sets up HTTP endpoints for:
// - The unified queue (/v1/queue)
// - Dashboard summary counts (/v1/queue/summary)
func (c *WorklistController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/queue", c.handleQueue)
	mux.HandleFunc("/v1/queue/summary", c.handleSummary)
}

// handleQueue answers one unified queue query.
//
// Query parameters: org, pillar, urgency, state, filter (a CEL
// expression), assigned_to_me, unassigned, limit, cursor.
func (c *WorklistController) handleQueue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	q := r.URL.Query()
	req := worklistsvc.ListRequest{
		Org:            q.Get("org"),
		Pillar:         q.Get("pillar"),
		Urgency:        q.Get("urgency"),
		State:          q.Get("state"),
		Filter:         q.Get("filter"),
		AssignedToMe:   parseBool(q.Get("assigned_to_me")),
		UnassignedOnly: parseBool(q.Get("unassigned")),
		Limit:          parseLimit(q.Get("limit")),
		Cursor:         q.Get("cursor"),
	}
	callerID := r.Header.Get(c.rt.Config().StaffHeader)

	page, err := c.svc.List(r.Context(), req, callerID)
	if err != nil {
		switch {
		case errors.Is(err, worklistsvc.ErrCallerRequired):
			writeError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, worklistsvc.ErrInvalidFilter), errors.Is(err, worklistsvc.ErrUnknownValue):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "Failed to build queue")
		}
		return
	}
	writeJSON(w, page)
}

// handleSummary answers the dashboard summary query.
func (c *WorklistController) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	sum, err := c.svc.Summary(r.Context(), r.URL.Query().Get("org"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to compute summary")
		return
	}
	writeJSON(w, sum)
}
