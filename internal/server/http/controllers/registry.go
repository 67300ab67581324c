package controllers

import (
	"net/http"

	"github.com/keelhq/opsq/internal/runtime"
	worklistsvc "github.com/keelhq/opsq/internal/services/worklist"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes
// and manages the lifecycle of individual controllers.
type ControllerRegistry struct {
	general  *GeneralController
	worklist *WorklistController
	items    *ItemsController
}

// NewControllerRegistry creates a new controller registry.
//
// It initializes all controllers with the provided runtime and service.
func NewControllerRegistry(rt *runtime.Runtime, svc *worklistsvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general:  NewGeneralController(rt),
		worklist: NewWorklistController(rt, svc),
		items:    NewItemsController(svc),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
//
// This method sets up all HTTP endpoints for the Opsq service: general
// endpoints (health), queue query endpoints, and item ingest endpoints.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.worklist.RegisterRoutes(mux)
	r.items.RegisterRoutes(mux)
}
