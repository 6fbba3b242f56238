// Package router assembles the Gin engine from the application modules.
package router

import (
	"context"
	"net/http"
	"time"

	apphttp "bankwise_support_backend/internal/http"
	"bankwise_support_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const serviceVersion = "1.0.0"

// New builds the Gin engine: global middleware, health endpoints, and one
// route-registration pass over the application modules.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", httpkit.APITokenHeader},
		MaxAge:       12 * time.Hour,
	}
	if app.Config.GetCORSAllowAll() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = app.Config.GetCORSOrigins()
	}
	engine.Use(cors.New(corsCfg))

	limiter := httpkit.NewIPRateLimiter(rate.Limit(50), 100, app.Logger)
	engine.Use(limiter.RateLimit())

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "BankWise support API is running",
			"version": serviceVersion,
		})
	})
	engine.GET("/health", func(c *gin.Context) {
		dbStatus := "disconnected"
		if app.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := app.Health.Ping(ctx); err == nil {
				dbStatus = "connected"
			}
		}
		activeSessions := 0
		if app.Sessions != nil {
			if n, err := app.Sessions.Count(c.Request.Context()); err == nil {
				activeSessions = n
			}
		}
		c.JSON(http.StatusOK, gin.H{
			"status":          "healthy",
			"timestamp":       time.Now().Format(time.RFC3339),
			"active_sessions": activeSessions,
			"database":        dbStatus,
			"version":         serviceVersion,
			"service":         "BankWise AI",
		})
	})

	auth := httpkit.APITokenAuth(app.Config)
	rctx := &apphttp.RouterContext{
		Engine:    engine,
		API:       engine.Group("/api", auth),
		Dashboard: engine.Group("/dashboard", auth),
		Config:    app.Config,
	}

	for _, m := range app.Modules {
		m.RegisterRoutes(rctx)
		app.Logger.Info("registered module routes", "module", m.Name())
	}

	return engine
}
