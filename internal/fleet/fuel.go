package fleet

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerFuel(rg *gin.RouterGroup) {
	g := rg.Group("/fuel")
	g.GET("", listAll(h.Fuel))
	g.POST("", h.createFuelLog)
	g.GET("/:id", getByID(h.Fuel, "Fuel log"))
	g.DELETE("/:id", deleteByID(h.Fuel, "Fuel log"))
}

func (h *Handler) createFuelLog(c *gin.Context) {
	var req FuelLogCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	// derive cost per km when the caller left it at zero
	if req.CostPerKm == 0 && req.Quantity > 0 {
		req.CostPerKm = math.Round(req.Cost/req.Quantity*100) / 100
	}

	l := FuelLog{
		FuelLogCreate: req,
		LogID:         store.NewID("fuel"),
		CreatedAt:     time.Now().UTC(),
	}
	if err := h.Fuel.Insert(c.Request.Context(), &l); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, l)
}
