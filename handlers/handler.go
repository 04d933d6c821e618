package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"timesheet/models"
)

var validate = validator.New()

// Handler carries the dependencies shared by all request handlers.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already out; an encode failure has nowhere to go.
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses and validates a request body. A false return means the
// response has already been written.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "validation failed: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) internalError(w http.ResponseWriter, action string, err error) {
	h.logger.Error(action, slog.Any("error", err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

// urlID extracts the numeric {id} route parameter.
func urlID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// findEngagement loads an engagement or writes a 404.
func (h *Handler) findEngagement(w http.ResponseWriter, db *gorm.DB, id uint) (*models.Engagement, bool) {
	var engagement models.Engagement
	if err := db.First(&engagement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "engagement not found")
		} else {
			h.internalError(w, "load engagement", err)
		}
		return nil, false
	}
	return &engagement, true
}
