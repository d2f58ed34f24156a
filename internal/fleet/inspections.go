package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/auth"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerInspections(rg *gin.RouterGroup) {
	g := rg.Group("/inspections")
	g.GET("", listAll(h.Inspections))
	g.POST("", h.createInspection)
	g.GET("/:id", getByID(h.Inspections, "Inspection"))
	g.PUT("/:id", updateByID[Inspection, InspectionCreate](h.Inspections, "Inspection"))
	g.POST("/:id/approve", h.approveInspection)
}

func (h *Handler) createInspection(c *gin.Context) {
	var req InspectionCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Pending"
	}
	if req.Checklist == nil {
		req.Checklist = []map[string]interface{}{}
	}
	if req.Photos == nil {
		req.Photos = []string{}
	}

	ins := Inspection{
		InspectionCreate: req,
		InspectionID:     store.NewID("insp"),
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.Inspections.Insert(c.Request.Context(), &ins); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ins)
}

// approveInspection sets status Approved and records the approving user.
// Re-approving just re-sets the same fields.
func (h *Handler) approveInspection(c *gin.Context) {
	set := map[string]interface{}{"status": "Approved"}
	if u := auth.CurrentUser(c); u != nil {
		set["approved_by"] = u.UserID
	}

	if err := h.Inspections.Patch(c.Request.Context(), c.Param("id"), set); err != nil {
		fail(c, err, "Inspection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Inspection approved successfully"})
}
