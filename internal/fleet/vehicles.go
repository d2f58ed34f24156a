package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/auth"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerVehicles(rg *gin.RouterGroup) {
	g := rg.Group("/vehicles")
	g.GET("", listAll(h.Vehicles))
	g.POST("", h.createVehicle)
	g.GET("/:id", getByID(h.Vehicles, "Vehicle"))
	g.PUT("/:id", updateByID[Vehicle, VehicleCreate](h.Vehicles, "Vehicle"))
	g.DELETE("/:id", deleteByID(h.Vehicles, "Vehicle"))
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req VehicleCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	v := Vehicle{
		VehicleCreate: req,
		VehicleID:     store.NewID("veh"),
		Photos:        []string{},
		Documents:     []map[string]interface{}{},
		CreatedAt:     time.Now().UTC(),
	}
	if u := auth.CurrentUser(c); u != nil {
		v.CreatedBy = u.UserID
	}

	if err := h.Vehicles.Insert(c.Request.Context(), &v); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}
