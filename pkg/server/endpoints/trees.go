package endpoints

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/odmforest/treesurvey/pkg/model"
	"github.com/odmforest/treesurvey/pkg/server"
	"github.com/odmforest/treesurvey/pkg/server/store"
)

func RegisterTreesEndpoints(s *server.Server) {
	router := s.Router
	treesStore := s.TreesStore

	// POST /api/trees - Insert a batch of trees
	router.HandleFunc("/api/trees", handleCreateTrees(treesStore)).Methods("POST")
}

// CreateTreesRequest represents a tree batch request body. The plot id is
// supplied once and applies to every row.
type CreateTreesRequest struct {
	Trees  []map[string]interface{} `json:"trees"`
	PlotID interface{}              `json:"plotId"`
}

func handleCreateTrees(treesStore store.TreesStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTreesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to insert tree data")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.Trees == nil {
			respondWithError(w, http.StatusInternalServerError, "Failed to insert tree data")
			return
		}

		plotID, err := parseInt(req.PlotID, "plotId")
		if err != nil {
			zap.S().Warnf("rejecting tree batch: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to insert tree data")
			return
		}

		trees := make([]model.Tree, 0, len(req.Trees))
		for _, row := range req.Trees {
			tree, err := treeFromRow(row, plotID)
			if err != nil {
				// Any bad row aborts the whole batch before it reaches
				// the database.
				zap.S().Warnf("rejecting tree batch: %v", err)
				respondWithError(w, http.StatusInternalServerError, "Failed to insert tree data")
				return
			}
			trees = append(trees, tree)
		}

		if err := treesStore.CreateTrees(trees); err != nil {
			zap.S().Warnf("tree batch insert failed: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to insert tree data")
			return
		}

		respondWithJSON(w, http.StatusCreated, map[string]interface{}{
			"message": "Trees inserted successfully",
			"count":   len(trees),
		})
	}
}

func treeFromRow(row map[string]interface{}, plotID int) (model.Tree, error) {
	treeNo, err := requireInt(row, "tree_no")
	if err != nil {
		return model.Tree{}, err
	}

	return model.Tree{
		ODMFName:    optString(row, "odmf_name"),
		TreeNo:      treeNo,
		Species:     optString(row, "species"),
		SpeciesCode: optString(row, "species_code"),
		RowID:       optInt(row, "row_id"),
		Latitude:    optFloat(row, "latitude"),
		Longitude:   optFloat(row, "longitude"),
		Elevation:   optFloat(row, "elevation"),
		Height:      optFloat(row, "height"),
		YearPlanted: optInt(row, "year_planted"),
		Comment:     optString(row, "comment"),
		ODMFID:      optInt(row, "odmf_id"),
		TreePlot:    optInt(row, "tree_plot"),
		TreeLetter:  optString(row, "tree_letter"),
		PlotID:      plotID,
	}, nil
}
