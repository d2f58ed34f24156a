package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerMaintenance(rg *gin.RouterGroup) {
	g := rg.Group("/maintenance")
	g.GET("", listAll(h.Maintenance))
	g.POST("", h.createMaintenanceRecord)
	g.GET("/:id", getByID(h.Maintenance, "Maintenance record"))
	g.DELETE("/:id", deleteByID(h.Maintenance, "Maintenance record"))
}

func (h *Handler) createMaintenanceRecord(c *gin.Context) {
	var req MaintenanceRecordCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Parts == nil {
		req.Parts = []map[string]interface{}{}
	}

	r := MaintenanceRecord{
		MaintenanceRecordCreate: req,
		RecordID:                store.NewID("mnt"),
		CreatedAt:               time.Now().UTC(),
	}
	if err := h.Maintenance.Insert(c.Request.Context(), &r); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}
