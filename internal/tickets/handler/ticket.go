package handler

import (
	"net/http"

	"freezestore/internal/tickets/service"
	apperrors "freezestore/pkg/errors"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	formatJSON = "json"
	formatText = "text"
)

type TicketHandler struct {
	service service.TicketService
	log     *logger.Logger
}

func NewTicketHandler(svc service.TicketService, log *logger.Logger) *TicketHandler {
	return &TicketHandler{service: svc, log: log}
}

func (h *TicketHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/tickets/id/:id", h.GetByID)
}

// GetByID returns the ticket as JSON, or as a text attachment when format=text.
func (h *TicketHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = formatJSON
	}
	if format != formatJSON && format != formatText {
		h.writeError(w, apperrors.InvalidInput("invalid format parameter: "+format))
		return
	}

	ticket, err := h.service.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if format == formatText {
		w.Header().Set("Content-Disposition", `attachment; filename="`+ticket.FileName+`.txt"`)
		if err := httputil.WriteText(w, http.StatusOK, h.service.Render(ticket)); err != nil {
			h.log.Error("failed to write text response", "handler", "GetByID", "operation", "WriteText", "error", err)
		}
		return
	}

	if err := httputil.WriteSuccess(w, ticket); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TicketHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
	}
}
