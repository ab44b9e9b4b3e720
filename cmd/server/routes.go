package main

import (
	"codeberg.org/hitlog/analyzer/api/rest/health"
	"codeberg.org/hitlog/analyzer/api/rest/reports"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(cors.Default())
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		reports.RegisterRoutes(v1, server.analyzeLimit)
	}
}
