package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/1th5/formogenhetskompassen/internal/calculation"
	"github.com/1th5/formogenhetskompassen/internal/config"
	"github.com/1th5/formogenhetskompassen/internal/domain"
	"github.com/1th5/formogenhetskompassen/internal/wealth"
)

// SnapshotStore persists household snapshots for the optional CRUD routes.
type SnapshotStore interface {
	Save(ctx context.Context, h *domain.Household) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	List(ctx context.Context) ([]domain.HouseholdRef, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Handler holds the dependencies of the HTTP handlers. Store is optional;
// without it the snapshot routes are not mounted.
type Handler struct {
	Parser *config.InputParser
	Store  SnapshotStore
}

// NewHandler creates a handler, optionally backed by a snapshot store.
func NewHandler(store SnapshotStore) *Handler {
	return &Handler{Parser: config.NewInputParser(), Store: store}
}

// CalculateResponse is the body returned by POST /calculate.
type CalculateResponse struct {
	Breakdown domain.MonthlyIncreaseBreakdown `json:"breakdown"`
	NetWorth  string                          `json:"net_worth"`
}

// projectEnvelope carries projection parameters alongside the input
// document.
type projectEnvelope struct {
	Months int `json:"months"`
}

// ProjectResponse is the body returned by POST /project.
type ProjectResponse struct {
	Initial    string   `json:"initial_net_worth"`
	Trajectory []string `json:"trajectory"`
	Months     int      `json:"months"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetLadder returns the default wealth ladder.
func (h *Handler) GetLadder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wealth.DefaultLadder())
}

// Calculate runs one aggregator month and returns the breakdown.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	in, eng, ok := h.parseRequest(w, r)
	if !ok {
		return
	}
	breakdown, netWorth, err := eng.Aggregate(in.Household)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CalculateResponse{
		Breakdown: breakdown,
		NetWorth:  netWorth.StringFixed(2),
	})
}

// Metrics classifies the household against the wealth ladder.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	in, eng, ok := h.parseRequest(w, r)
	if !ok {
		return
	}
	classifier, err := wealth.NewClassifier(eng, in.Ladder)
	if err != nil {
		writeError(w, err)
		return
	}
	metrics, err := classifier.Metrics(in.Household)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

// Project runs a monthly projection over the requested horizon.
func (h *Handler) Project(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := h.Parser.ParseJSON(body)
	if err != nil {
		writeError(w, err)
		return
	}
	var env projectEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		writeError(w, err)
		return
	}
	eng, err := calculation.NewEngine(in.Rates)
	if err != nil {
		writeError(w, err)
		return
	}

	months := env.Months
	if months <= 0 {
		months = 12
	}
	proj, err := eng.Project(in.Household, calculation.StopAfterMonths(months), months)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ProjectResponse{
		Initial: proj.Initial.StringFixed(2),
		Months:  proj.Months,
	}
	for _, v := range proj.Trajectory {
		resp.Trajectory = append(resp.Trajectory, v.StringFixed(2))
	}
	writeJSON(w, http.StatusOK, resp)
}

// SaveHousehold stores the household from the request document verbatim.
func (h *Handler) SaveHousehold(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	in, err := h.Parser.ParseJSON(body)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Store.Save(r.Context(), in.Household); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": in.Household.ID.String()})
}

// GetHousehold returns a stored snapshot.
func (h *Handler) GetHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	household, err := h.Store.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, household)
}

// ListHouseholds returns refs to stored snapshots, most recent first.
func (h *Handler) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	list, err := h.Store.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteHousehold removes a stored snapshot.
func (h *Handler) DeleteHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, domain.ErrInvalidInput)
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request) (*config.Input, *calculation.Engine, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, err)
		return nil, nil, false
	}
	in, err := h.Parser.ParseJSON(body)
	if err != nil {
		writeError(w, err)
		return nil, nil, false
	}
	eng, err := calculation.NewEngine(in.Rates)
	if err != nil {
		writeError(w, err)
		return nil, nil, false
	}
	return in, eng, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrConfigIncomplete):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrHouseholdNotFound):
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
