package api

import (
	"github.com/jmercer/portfolio-site-backend/database"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	authHandler    authHandler
	healthHandler  healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, signer tokenSigner, startupTime startupTimeFn) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(database.ProjectRepo()),
		authHandler:    newAuthHandler(database.UserRepo(), signer),
		healthHandler:  newHealthHandler(startupTime),
	}
}
