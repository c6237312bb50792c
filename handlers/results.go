package handlers

import (
	"net/http"

	"github.com/vitalapp/vital-api/model"
)

// Results handles requests for the results collection. Results can't be changed once recorded.
type Results struct {
	store ResultStore
}

// NewResults returns a new set of result handlers.
func NewResults(store ResultStore) *Results {
	return &Results{store: store}
}

// List handles GET /results.
func (h *Results) List(w http.ResponseWriter, r *http.Request) {
	results, err := h.store.ListResults(r.Context())
	if err != nil {
		WriteError(w, r, err, "Error fetching results")
		return
	}
	writeSuccess(w, http.StatusOK, results, "")
}

// Create handles POST /results.
func (h *Results) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewResult
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, err, "Error creating result")
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, r, err, "Error creating result")
		return
	}

	result, err := h.store.CreateResult(r.Context(), &req)
	if err != nil {
		WriteError(w, r, err, "Error creating result")
		return
	}
	writeSuccess(w, http.StatusCreated, result, "Result created successfully")
}
