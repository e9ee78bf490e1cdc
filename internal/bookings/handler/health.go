package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"classroom/pkg/config"
	apperrors "classroom/pkg/errors"
	pkghttp "classroom/pkg/http"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/health", h.Health)
	router.HandlerFunc(http.MethodGet, "/ready", h.Ready)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := pkghttp.WriteSuccess(w, map[string]string{"status": "ok"}); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}

// Ready reports whether the service can reach its dependencies.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.cfg.Client.Mongo.Ping(r.Context(), readpref.Primary()); err != nil {
		h.cfg.Log.Error("readiness check failed", "error", err)
		if writeErr := pkghttp.WriteError(w, apperrors.Unavailable("database")); writeErr != nil {
			h.cfg.Log.Error("failed to write error response", "error", writeErr)
		}
		return
	}

	if err := pkghttp.WriteSuccess(w, map[string]string{"status": "ready"}); err != nil {
		h.cfg.Log.Error("failed to write response", "error", err)
	}
}
