package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"

	"classroom/internal/directory/service"
	"classroom/pkg/config"
	apperrors "classroom/pkg/errors"
	pkghttp "classroom/pkg/http"
	"classroom/pkg/model"
)

type RoomHandler struct {
	cfg     *config.Config
	service service.AvailabilityService
}

func NewRoomHandler(cfg *config.Config, svc service.AvailabilityService) *RoomHandler {
	return &RoomHandler{cfg: cfg, service: svc}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/v1/rooms", h.List)
}

// List returns rooms matching the query filters, each annotated with its
// current occupancy.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := roomFilterFromQuery(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	rooms, err := h.service.ListRooms(r.Context(), filter, time.Now())
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WriteSuccess(w, rooms); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

func roomFilterFromQuery(r *http.Request) (model.RoomFilter, error) {
	query := r.URL.Query()
	filter := model.RoomFilter{Campus: query.Get("campus")}

	intParams := []struct {
		name string
		dst  *int
	}{
		{"min_capacity", &filter.MinCapacity},
		{"min_computers", &filter.MinComputers},
		{"min_projectors", &filter.MinProjectors},
		{"min_whiteboards", &filter.MinWhiteboards},
		{"min_speakers", &filter.MinSpeakers},
	}

	for _, p := range intParams {
		s := query.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return filter, apperrors.InvalidInput("invalid " + p.name + " parameter: " + s)
		}
		*p.dst = v
	}

	return filter, nil
}

func (h *RoomHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := pkghttp.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("failed to write error response", "error", writeErr)
	}
}
