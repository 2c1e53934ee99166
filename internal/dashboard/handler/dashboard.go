package handler

import (
	"net/http"

	"freezestore/internal/dashboard/service"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *logger.Logger
}

func NewDashboardHandler(svc service.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{service: svc, log: log}
}

func (h *DashboardHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/dashboard", h.Get)
}

func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	summary, err := h.service.Get(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Get", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, summary); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Get", "operation", "WriteSuccess", "error", err)
	}
}
