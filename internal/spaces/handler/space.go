package handler

import (
	"net/http"
	"strconv"

	"freezestore/internal/spaces/service"
	apperrors "freezestore/pkg/errors"
	httputil "freezestore/pkg/http"
	"freezestore/pkg/logger"
	"freezestore/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SpaceHandler struct {
	service service.SpaceService
	log     *logger.Logger
}

func NewSpaceHandler(svc service.SpaceService, log *logger.Logger) *SpaceHandler {
	return &SpaceHandler{service: svc, log: log}
}

func (h *SpaceHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/spaces", h.GetAll)
	router.GET("/api/v1/spaces/suggest", h.Suggest)
}

func (h *SpaceHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	status := model.SpaceStatus(query.Get("status"))
	section := model.Section(query.Get("section"))

	list, err := h.service.GetAll(r.Context(), status, section)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WriteSuccess(w, list); err != nil {
		h.log.Error("failed to write JSON response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SpaceHandler) Suggest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	countStr := r.URL.Query().Get("count")
	count, err := strconv.Atoi(countStr)
	if err != nil {
		h.writeError(w, "Suggest", apperrors.InvalidInput("invalid count parameter: "+countStr))
		return
	}

	suggestion, err := h.service.Suggest(r.Context(), count)
	if err != nil {
		h.writeError(w, "Suggest", err)
		return
	}

	if err := httputil.WriteSuccess(w, suggestion); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Suggest", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SpaceHandler) writeError(w http.ResponseWriter, op string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", op, "operation", "WriteError", "error", writeErr)
	}
}
