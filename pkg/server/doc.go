// Package server provides the HTTP server for the tree survey API.
//
// This package implements the core HTTP server that handles all survey REST
// API requests. It uses gorilla/mux for routing and gorilla/handlers for
// request logging and CORS.
//
// # Server Setup
//
//	srv := server.NewServer(db, host, port, corsOrigins)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds the router, the database handle and one store per
// resource (users, areas, plots, trees, videos, tree views). Handlers talk
// to the store interfaces only, never to GORM directly, so they can be
// tested against mocked databases.
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all survey API endpoints including:
//
//   - /users and /login - signup and authentication
//   - /api/area-admins/{userId} and /api/areas/{areaId} - area lookups
//   - /api/plots - plot creation and listing with GeoJSON boundaries
//   - /api/trees - batch tree insertion
//   - /video - video registration and listing
//   - /tree-view/import - CSV-derived tree-view import
package server
