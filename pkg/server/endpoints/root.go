package endpoints

import (
	"net/http"

	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func RegisterRootEndpoints(s *server.Server) {
	router := s.Router
	healthStore := s.HealthStore

	router.HandleFunc("/", handleRoot()).Methods("GET")
	router.HandleFunc("/healthz", handleHealth(healthStore)).Methods("GET")
}

func handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, "Hello, this is the backend!")
	}
}

func handleHealth(healthStore store.HealthStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := healthStore.Ping(); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error"})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
