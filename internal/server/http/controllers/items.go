package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/keelhq/opsq/internal/queue"
	worklistsvc "github.com/keelhq/opsq/internal/services/worklist"
)

// ItemsController handles raw work-item ingest and removal.
//
// Origin subsystems push their records here; the engine itself never
// writes, so these are the only mutating endpoints.
type ItemsController struct {
	svc *worklistsvc.Service
}

// NewItemsController creates a new items controller.
func NewItemsController(svc *worklistsvc.Service) *ItemsController {
	return &ItemsController{svc: svc}
}

// RegisterRoutes registers item routes with the given mux.
func (c *ItemsController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/items", c.handleItems)
}

func (c *ItemsController) handleItems(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		c.handleIngest(w, r)
	case http.MethodDelete:
		c.handleRemove(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

type ingestReq struct {
	Items []queue.RawItem `json:"items"`
}

// handleIngest upserts a batch of raw work items.
//
// Expects a JSON body with an "items" array. The whole batch commits
// atomically; returns the stored records, including generated IDs.
func (c *ItemsController) handleIngest(w http.ResponseWriter, r *http.Request) {
	var req ingestReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	stored, err := c.svc.Ingest(r.Context(), req.Items)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"items": stored})
}

// handleRemove deletes one item identified by org, type, and id query
// parameters. Removing an absent item still returns 204.
func (c *ItemsController) handleRemove(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	org := q.Get("org")
	typ := queue.ItemType(q.Get("type"))
	id := q.Get("id")
	if org == "" || id == "" {
		writeError(w, http.StatusBadRequest, "org and id are required")
		return
	}
	if err := c.svc.Remove(r.Context(), org, typ, id); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeNoContent(w)
}
