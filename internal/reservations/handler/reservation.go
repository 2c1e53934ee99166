package handler

import (
	"net/http"

	"freezestore/internal/reservations/service"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReservationHandler struct {
	service service.ReservationService
	log     *logger.Logger
}

func NewReservationHandler(svc service.ReservationService, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{service: svc, log: log}
}

type listResponse struct {
	httputil.PaginatedResponse
	Counts model.StatusCounts `json:"counts"`
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/reservations", h.GetAll)
	router.POST("/api/v1/reservations", h.Create)
	router.POST("/api/v1/reservations/quote", h.Quote)
	router.GET("/api/v1/reservations/id/:id", h.GetByID)
	router.DELETE("/api/v1/reservations/id/:id", h.Delete)
	router.POST("/api/v1/reservations/id/:id/extend", h.Extend)
	router.POST("/api/v1/reservations/id/:id/complete", h.Complete)
}

func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.QuoteInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Quote", err)
		return
	}

	quote, err := h.service.Quote(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Quote", err)
		return
	}

	if err := httputil.WriteSuccess(w, quote); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Quote", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ReservationInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	reservation, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, reservation); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ReservationHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	query := r.URL.Query()
	filter := model.ReservationFilter{Search: query.Get("search")}
	if status := query.Get("status"); status != "" && status != "all" {
		filter.Status = model.ReservationStatus(status)
	}

	list, err := h.service.GetAll(r.Context(), filter, limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, listResponse{
		PaginatedResponse: httputil.PaginatedResponse{
			Data:       list.Reservations,
			TotalCount: list.Total,
			Limit:      limit,
			Offset:     offset,
		},
		Counts: list.Counts,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetAll", "operation", "WriteJSON", "error", err)
	}
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reservation, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, reservation); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) Extend(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input model.ExtendInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Extend", err)
		return
	}

	reservation, err := h.service.Extend(r.Context(), ps.ByName("id"), &input)
	if err != nil {
		h.writeError(w, "Extend", err)
		return
	}

	if err := httputil.WriteSuccess(w, reservation); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Extend", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) Complete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	reservation, err := h.service.Complete(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "Complete", err)
		return
	}

	if err := httputil.WriteSuccess(w, reservation); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Complete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "operation", "WriteError", "error", writeErr)
	}
}
