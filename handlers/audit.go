package handlers

import (
	"net/http"
	"strconv"

	"timesheet/database"
	"timesheet/models"
)

func (h *Handler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := database.GetDB().Model(&models.AuditLog{})

	if raw := r.URL.Query().Get("entity_type"); raw != "" {
		entityType := models.AuditEntityType(raw)
		if !entityType.Valid() {
			writeError(w, http.StatusBadRequest, "invalid entity_type")
			return
		}
		query = query.Where("entity_type = ?", entityType)
	}
	if raw := r.URL.Query().Get("entity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid entity_id")
			return
		}
		query = query.Where("entity_id = ?", uint(id))
	}

	var logs []models.AuditLog
	if err := query.Order("id desc").Find(&logs).Error; err != nil {
		h.internalError(w, "list audit logs", err)
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
