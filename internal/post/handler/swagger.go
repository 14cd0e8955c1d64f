package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger serves a machine-readable OpenAPI document for the posts
// API plus a small HTML page that renders it.
// - GET /swagger/index.html
// - GET /swagger/doc.json
func RegisterSwagger(r *gin.Engine) {
	r.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	r.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Header("Content-Type", "application/json")
		c.String(http.StatusOK, swaggerJSON)
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>inkpost — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "inkpost", "version": "v0.1.0" },
  "paths": {
    "/posts": {
      "get": { "summary": "List all posts", "responses": { "200": { "description": "array of posts" } } },
      "post": {
        "summary": "Create a post",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","required":["title","content","author"],"properties":{"title":{"type":"string"},"content":{"type":"string"},"author":{"oneOf":[{"type":"string"},{"type":"object","properties":{"firstName":{"type":"string"},"lastName":{"type":"string"}}}]}}}}}},
        "responses": { "201": { "description": "created post" }, "400": { "description": "validation error" } }
      }
    },
    "/posts/{id}": {
      "get": { "summary": "Fetch one post", "responses": { "200": { "description": "the post" }, "404": { "description": "unknown id" } } },
      "put": {
        "summary": "Replace a post",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"id":{"type":"string"},"title":{"type":"string"},"content":{"type":"string"},"author":{"type":"string"}}}}}},
        "responses": { "204": { "description": "replaced" }, "400": { "description": "validation error or id mismatch" }, "404": { "description": "unknown id" } }
      },
      "delete": { "summary": "Delete a post (idempotent)", "responses": { "204": { "description": "deleted or already absent" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
