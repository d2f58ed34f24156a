package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerParts(rg *gin.RouterGroup) {
	g := rg.Group("/parts")
	g.GET("", listAll(h.Parts))
	g.POST("", h.createPart)
	g.GET("/:id", getByID(h.Parts, "Part"))
	g.PUT("/:id", h.updatePart)
	g.DELETE("/:id", deleteByID(h.Parts, "Part"))
}

func (h *Handler) createPart(c *gin.Context) {
	var req PartCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	p := Part{
		PartCreate: req,
		PartID:     store.NewID("prt"),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := h.Parts.Insert(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// partUpdate carries the caller payload plus the recomputed updated_at.
type partUpdate struct {
	PartCreate `bson:",inline"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func (h *Handler) updatePart(c *gin.Context) {
	var req PartCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	upd := partUpdate{PartCreate: req, UpdatedAt: time.Now().UTC()}
	p, err := h.Parts.Replace(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		fail(c, err, "Part")
		return
	}
	c.JSON(http.StatusOK, p)
}
