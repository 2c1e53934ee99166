package handler

import (
	"net/http"

	"freezestore/internal/clients/service"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ClientHandler struct {
	service service.ClientService
	log     *logger.Logger
}

func NewClientHandler(svc service.ClientService, log *logger.Logger) *ClientHandler {
	return &ClientHandler{service: svc, log: log}
}

func (h *ClientHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/clients", h.GetAll)
	router.POST("/api/v1/clients", h.Create)
	router.GET("/api/v1/clients/id/:id", h.GetByID)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ClientInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	client, err := h.service.Create(r.Context(), &input)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, client); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ClientHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	clients, total, err := h.service.GetAll(r.Context(), r.URL.Query().Get("search"), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, clients, total, limit, offset); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	profile, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, profile); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ClientHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "operation", "WriteError", "error", writeErr)
	}
}
