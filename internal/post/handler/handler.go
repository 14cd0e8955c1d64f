package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkpost/inkpost/internal/post"
	"github.com/inkpost/inkpost/internal/post/service"
	"github.com/inkpost/inkpost/pkg/metrics"
)

// postRequest is the body for POST /posts and PUT /posts/:id. ID is only
// meaningful on PUT, where it must match the path id when present.
type postRequest struct {
	ID      string      `json:"id"`
	Title   string      `json:"title" binding:"required"`
	Content string      `json:"content" binding:"required"`
	Author  authorField `json:"author" binding:"required"`
}

// authorField accepts the author either structured ({firstName, lastName}) or
// composed ("First Last"). Both decode to the structured storage form.
type authorField struct {
	post.Author
}

func (a *authorField) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := post.ParseAuthor(s)
		if err != nil {
			return err
		}
		a.Author = parsed
		return nil
	}
	return json.Unmarshal(b, &a.Author)
}

// RegisterPostRoutes wires the blog-post resource onto the engine.
func RegisterPostRoutes(r *gin.Engine, svc service.Service) {
	r.GET("/posts", func(c *gin.Context) {
		list, err := svc.List(c.Request.Context())
		if err != nil {
			metrics.PostOperations.WithLabelValues("list", "store_error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
			return
		}
		out := make([]post.WirePost, 0, len(list))
		for _, p := range list {
			out = append(out, p.Wire())
		}
		metrics.PostOperations.WithLabelValues("list", "ok").Inc()
		c.JSON(http.StatusOK, out)
	})

	r.GET("/posts/:id", func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				metrics.PostOperations.WithLabelValues("get", "not_found").Inc()
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			metrics.PostOperations.WithLabelValues("get", "store_error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
			return
		}
		metrics.PostOperations.WithLabelValues("get", "ok").Inc()
		c.JSON(http.StatusOK, p.Wire())
	})

	r.POST("/posts", func(c *gin.Context) {
		var req postRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.PostOperations.WithLabelValues("create", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		p, err := svc.Create(c.Request.Context(), req.Title, req.Content, req.Author.Author)
		if err != nil {
			if errors.Is(err, service.ErrValidation) {
				metrics.PostOperations.WithLabelValues("create", "rejected").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			metrics.PostOperations.WithLabelValues("create", "store_error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
			return
		}
		metrics.PostOperations.WithLabelValues("create", "ok").Inc()
		c.JSON(http.StatusCreated, p.Wire())
	})

	r.PUT("/posts/:id", func(c *gin.Context) {
		id := c.Param("id")
		var req postRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			metrics.PostOperations.WithLabelValues("update", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ID != "" && req.ID != id {
			metrics.PostOperations.WithLabelValues("update", "rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "body id does not match path id"})
			return
		}
		if err := svc.Update(c.Request.Context(), id, req.Title, req.Content, req.Author.Author); err != nil {
			switch {
			case errors.Is(err, service.ErrNotFound):
				metrics.PostOperations.WithLabelValues("update", "not_found").Inc()
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			case errors.Is(err, service.ErrValidation):
				metrics.PostOperations.WithLabelValues("update", "rejected").Inc()
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				metrics.PostOperations.WithLabelValues("update", "store_error").Inc()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
			}
			return
		}
		metrics.PostOperations.WithLabelValues("update", "ok").Inc()
		c.Status(http.StatusNoContent)
	})

	r.DELETE("/posts/:id", func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			metrics.PostOperations.WithLabelValues("delete", "store_error").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "store unavailable"})
			return
		}
		metrics.PostOperations.WithLabelValues("delete", "ok").Inc()
		c.Status(http.StatusNoContent)
	})
}
