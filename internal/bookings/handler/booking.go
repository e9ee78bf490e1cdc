package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"classroom/internal/bookings/service"
	"classroom/pkg/config"
	apperrors "classroom/pkg/errors"
	pkghttp "classroom/pkg/http"
	"classroom/pkg/model"
)

// Identity headers set by the gateway after authentication. The engine
// trusts them; it performs no authentication of its own.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

type BookingHandler struct {
	cfg     *config.Config
	service service.BookingService
}

func NewBookingHandler(cfg *config.Config, svc service.BookingService) *BookingHandler {
	return &BookingHandler{cfg: cfg, service: svc}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/api/v1/bookings", h.Create)
	router.HandlerFunc(http.MethodGet, "/api/v1/bookings", h.List)
	router.GET("/api/v1/bookings/id/:id", h.GetByID)
	router.GET("/api/v1/bookings/faculty/:id", h.ListByFaculty)
	router.POST("/api/v1/bookings/id/:id/approve", h.Approve)
	router.POST("/api/v1/bookings/id/:id/reject", h.Reject)
}

func (h *BookingHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := pkghttp.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("failed to write error response", "error", writeErr)
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(HeaderUserID)
	role := r.Header.Get(HeaderUserRole)
	if userID == "" || role == "" {
		h.writeError(w, apperrors.Forbidden("missing identity headers"))
		return
	}

	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("invalid request body"))
		return
	}
	req.RequesterID = userID
	req.CanBookRooms = role == model.RoleFaculty

	booking, err := h.service.Admit(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WriteCreated(w, booking); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pkghttp.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	bookings, total, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WritePaginated(w, bookings, total, limit, offset); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	booking, err := h.service.GetByID(r.Context(), params.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WriteSuccess(w, booking); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

func (h *BookingHandler) ListByFaculty(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	query := r.URL.Query()

	bookings, err := h.service.GetByFaculty(
		r.Context(),
		params.ByName("id"),
		query.Get("status"),
		query.Get("date_range"),
		time.Now(),
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WriteSuccess(w, bookings); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if r.Header.Get(HeaderUserRole) != model.RoleAdmin {
		h.writeError(w, apperrors.Forbidden("only admins can approve bookings"))
		return
	}

	booking, err := h.service.Approve(r.Context(), params.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WriteSuccess(w, booking); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	if r.Header.Get(HeaderUserRole) != model.RoleAdmin {
		h.writeError(w, apperrors.Forbidden("only admins can reject bookings"))
		return
	}

	booking, err := h.service.Reject(r.Context(), params.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := pkghttp.WriteSuccess(w, booking); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}
