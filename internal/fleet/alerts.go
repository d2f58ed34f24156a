package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerAlerts(rg *gin.RouterGroup) {
	g := rg.Group("/alerts")
	g.GET("", listAll(h.Alerts))
	g.POST("", h.createAlert)
	g.PUT("/:id", h.updateAlertStatus)
}

func (h *Handler) createAlert(c *gin.Context) {
	var req AlertCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	a := Alert{
		AlertCreate: req,
		AlertID:     store.NewID("alt"),
		CreatedAt:   time.Now().UTC(),
		ResolvedAt:  nil,
	}
	if err := h.Alerts.Insert(c.Request.Context(), &a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// updateAlertStatus takes the new status from the query string. The value is
// not validated against the known statuses; Dismissed and Resolved stamp
// resolved_at once.
func (h *Handler) updateAlertStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err == nil {
			status = body.Status
		}
	}
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	set := map[string]interface{}{"status": status}
	if status == "Dismissed" || status == "Resolved" {
		set["resolved_at"] = time.Now().UTC()
	}

	if err := h.Alerts.Patch(c.Request.Context(), c.Param("id"), set); err != nil {
		fail(c, err, "Alert")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Alert updated successfully"})
}
