package endpoints

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func RegisterAreasEndpoints(s *server.Server) {
	router := s.Router
	areasStore := s.AreasStore

	// GET /api/area-admins/{userId} - Area administered by a user
	router.HandleFunc("/api/area-admins/{userId:[0-9]+}", handleGetAreaAdmin(areasStore)).Methods("GET")

	// GET /api/areas/{areaId} - Area details
	router.HandleFunc("/api/areas/{areaId:[0-9]+}", handleGetArea(areasStore)).Methods("GET")
}

func handleGetAreaAdmin(areasStore store.AreasStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.Atoi(mux.Vars(r)["userId"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid user id")
			return
		}

		areaID, err := areasStore.FindAdminAreaID(userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "User is not an area admin.")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]int{"areaId": areaID})
	}
}

func handleGetArea(areasStore store.AreasStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		areaID, err := strconv.Atoi(mux.Vars(r)["areaId"])
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid area id")
			return
		}

		area, err := areasStore.FindAreaByID(areaID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondWithError(w, http.StatusNotFound, "Area not found.")
				return
			}
			respondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondWithJSON(w, http.StatusOK, map[string]string{
			"area_name":        area.AreaName,
			"area_information": area.AreaInformation,
		})
	}
}
