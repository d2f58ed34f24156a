package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerDrivers(rg *gin.RouterGroup) {
	g := rg.Group("/drivers")
	g.GET("", listAll(h.Drivers))
	g.POST("", h.createDriver)
	g.GET("/:id", getByID(h.Drivers, "Driver"))
	g.PUT("/:id", updateByID[Driver, DriverCreate](h.Drivers, "Driver"))
	g.DELETE("/:id", deleteByID(h.Drivers, "Driver"))

	// assignment sub-resource: no overlap or conflict checking
	g.GET("/:id/assignments", h.listAssignments)
	g.POST("/:id/assignments", h.createAssignment)
}

func (h *Handler) createDriver(c *gin.Context) {
	var req DriverCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	d := Driver{
		DriverCreate:     req,
		DriverID:         store.NewID("drv"),
		Documents:        []map[string]interface{}{},
		PerformanceNotes: []map[string]interface{}{},
		CreatedAt:        time.Now().UTC(),
	}
	if err := h.Drivers.Insert(c.Request.Context(), &d); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) listAssignments(c *gin.Context) {
	docs, err := h.Assignments.ListWhere(c.Request.Context(), "driver_id", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *Handler) createAssignment(c *gin.Context) {
	var req DriverAssignmentCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.DriverID == "" {
		req.DriverID = c.Param("id")
	}

	a := DriverAssignment{
		DriverAssignmentCreate: req,
		AssignmentID:           store.NewID("asn"),
		CreatedAt:              time.Now().UTC(),
	}
	if err := h.Assignments.Insert(c.Request.Context(), &a); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}
