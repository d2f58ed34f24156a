package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerTires(rg *gin.RouterGroup) {
	g := rg.Group("/tires")
	g.GET("", listAll(h.Tires))
	g.POST("", h.createTire)
	g.GET("/:id", getByID(h.Tires, "Tire"))
	g.PUT("/:id", updateByID[Tire, TireCreate](h.Tires, "Tire"))
	g.DELETE("/:id", deleteByID(h.Tires, "Tire"))
}

func (h *Handler) createTire(c *gin.Context) {
	var req TireCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Active"
	}

	t := Tire{
		TireCreate: req,
		TireID:     store.NewID("tire"),
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.Tires.Insert(c.Request.Context(), &t); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}
