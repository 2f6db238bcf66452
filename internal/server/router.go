// Package server is the demo service the pipeline packages: two fixed JSON
// endpoints on port 8000, all interfaces, no configuration surface.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Addr is fixed: the image declares this port, the service binds it.
const Addr = ":8000"

// NewRouter wires the two routes. There is nothing to configure.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", handleRoot)
	router.GET("/health", handleHealth)

	return router
}

func handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello from your Dockerized Flask app!"})
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
