package endpoints

import (
	"github.com/odmforest/treesurvey/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterRootEndpoints(srv)
	RegisterUsersEndpoints(srv)
	RegisterAreasEndpoints(srv)
	RegisterPlotsEndpoints(srv)
	RegisterTreesEndpoints(srv)
	RegisterVideosEndpoints(srv)
	RegisterTreeViewsEndpoints(srv)
}
