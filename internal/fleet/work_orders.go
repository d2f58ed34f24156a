package fleet

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

func (h *Handler) registerWorkOrders(rg *gin.RouterGroup) {
	g := rg.Group("/work-orders")
	g.GET("", listAll(h.WorkOrders))
	g.POST("", h.createWorkOrder)
	g.GET("/:id", getByID(h.WorkOrders, "Work order"))
	g.PUT("/:id", updateByID[WorkOrder, WorkOrderCreate](h.WorkOrders, "Work order"))
	g.DELETE("/:id", deleteByID(h.WorkOrders, "Work order"))
}

func (h *Handler) createWorkOrder(c *gin.Context) {
	var req WorkOrderCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Status == "" {
		req.Status = "Pending"
	}
	if req.Parts == nil {
		req.Parts = []map[string]interface{}{}
	}

	o := WorkOrder{
		WorkOrderCreate: req,
		OrderID:         store.NewID("wo"),
		CreatedAt:       time.Now().UTC(),
	}
	if err := h.WorkOrders.Insert(c.Request.Context(), &o); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}
