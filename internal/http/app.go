// Package http provides HTTP server infrastructure including module registration.
package http

import (
	"context"

	"bankwise_support_backend/platform/config"
	"bankwise_support_backend/platform/events"
	"bankwise_support_backend/platform/logger"
)

// RouterConfig combines the config interfaces needed by the HTTP router.
type RouterConfig interface {
	config.HTTPConfig
	config.AuthConfig
}

// HealthChecker exposes minimal functionality for readiness checks.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// SessionCounter reports the number of live conversational sessions.
type SessionCounter interface {
	Count(ctx context.Context) (int, error)
}

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the router configuration (HTTP and auth settings only).
	Config RouterConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// Health is used for readiness/health checks (nil when running without a
	// database; the health endpoint then reports the store as disconnected).
	Health HealthChecker
	// Sessions reports the live session count for the health endpoint.
	Sessions SessionCounter
	// EventBus is the domain event bus for cross-module communication.
	EventBus events.Bus
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
