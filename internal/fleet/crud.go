package fleet

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joglo66/fleet-backend/internal/store"
)

// Shared endpoint bodies for the mechanical CRUD pattern every resource
// follows. Create endpoints stay per-resource; they are where the
// server-assigned fields and derivation rules differ.

func fail(c *gin.Context, err error, noun string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": noun + " not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func listAll[T any](st store.Store[T]) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := st.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, docs)
	}
}

func getByID[T any](st store.Store[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := st.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err, noun)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// updateByID is a full replace of the caller-supplied payload; id and
// created_at are not in P and therefore untouched.
func updateByID[T any, P any](st store.Store[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload P
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc, err := st.Replace(c.Request.Context(), c.Param("id"), payload)
		if err != nil {
			fail(c, err, noun)
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

func deleteByID[T any](st store.Store[T], noun string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := st.Delete(c.Request.Context(), c.Param("id")); err != nil {
			fail(c, err, noun)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": noun + " deleted successfully"})
	}
}
