package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/paulmach/orb"

	"github.com/odmforest/treesurvey/pkg/geometry"
	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func RegisterPlotsEndpoints(s *server.Server) {
	router := s.Router
	plotsStore := s.PlotsStore

	// POST /api/plots - Create a plot with a GeoJSON boundary
	router.HandleFunc("/api/plots", handleCreatePlot(plotsStore)).Methods("POST")

	// GET /api/plots - List plots with their boundary outlines
	router.HandleFunc("/api/plots", handleListPlots(plotsStore)).Methods("GET")
}

// CreatePlotRequest represents a plot creation request body. The boundary
// may arrive as a GeoJSON geometry object or as a JSON string wrapping one.
type CreatePlotRequest struct {
	PlotName        string          `json:"plot_name"`
	PlotInformation string          `json:"plot_information"`
	AreaID          int             `json:"area_id"`
	PlotBorder      json.RawMessage `json:"plot_border"`
}

// PlotResponse is a plot with its boundary flattened to the outer ring.
type PlotResponse struct {
	PlotID          int      `json:"plot_id"`
	PlotName        string   `json:"plot_name"`
	PlotInformation string   `json:"plot_information"`
	AreaID          int      `json:"area_id"`
	Coordinates     orb.Ring `json:"coordinates"`
}

func handleCreatePlot(plotsStore store.PlotsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		boundary, err := geometry.ParseBoundary(req.PlotBorder)
		if err != nil {
			if errors.Is(err, geometry.ErrUnsupportedType) {
				respondWithError(w, http.StatusBadRequest, "Only Polygon or MultiPolygon geometries are supported")
				return
			}
			respondWithJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Internal server error",
				"details": err.Error(),
			})
			return
		}

		plotID, err := plotsStore.CreatePlot(req.PlotName, req.PlotInformation, req.AreaID, boundary)
		if err != nil {
			respondWithJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Internal server error",
				"details": err.Error(),
			})
			return
		}

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Plot created successfully",
			"plot_id": plotID,
		})
	}
}

func handleListPlots(plotsStore store.PlotsStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := plotsStore.ListPlotGeometries()
		if err != nil {
			respondWithJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Internal server error",
				"details": err.Error(),
			})
			return
		}

		plots := make([]PlotResponse, 0, len(rows))
		for _, row := range rows {
			ring, err := geometry.OuterRing(row.GeoJSON)
			if err != nil {
				respondWithJSON(w, http.StatusInternalServerError, map[string]string{
					"error":   "Internal server error",
					"details": err.Error(),
				})
				return
			}
			plots = append(plots, PlotResponse{
				PlotID:          row.PlotID,
				PlotName:        row.PlotName,
				PlotInformation: row.PlotInformation,
				AreaID:          row.AreaID,
				Coordinates:     ring,
			})
		}

		respondWithJSON(w, http.StatusOK, plots)
	}
}
