package mcp

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/web3wallet/wallet-mcp/internal/mcperr"
)

// NewHTTPRouter builds the gin engine serving the JSON-RPC endpoint plus
// health and metrics.
func NewHTTPRouter(router *Router, version string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())

	engine.POST("/mcp", func(c *gin.Context) {
		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			parseErr := mcperr.Errorf(mcperr.KindInvalidJSONRPCRequest, "Invalid JSON-RPC request: %v", err)
			c.JSON(http.StatusOK, &Response{
				JSONRPC: "2.0",
				Error:   errorEnvelope(parseErr, uuid.NewString()),
			})
			return
		}
		c.JSON(http.StatusOK, router.Dispatch(c.Request.Context(), &req))
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "wallet-mcp",
			"version": version,
			"endpoints": gin.H{
				"mcp":     "POST /mcp",
				"health":  "GET /health",
				"metrics": "GET /metrics",
			},
		})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return engine
}
