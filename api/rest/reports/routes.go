package reports

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the report endpoints. analyzeLimit is the per-IP rate
// limit middleware applied to analysis runs.
func RegisterRoutes(router *gin.RouterGroup, analyzeLimit gin.HandlerFunc) {
	router.GET("/policies", ListPoliciesHandler())
	router.POST("/analyses", analyzeLimit, AnalyzeHandler())
}
