package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/drillbook-dev/drillbook/internal/attemptlog"
	"github.com/drillbook-dev/drillbook/internal/grade"
	"github.com/drillbook-dev/drillbook/internal/model"
	"github.com/drillbook-dev/drillbook/internal/progress"
	"github.com/drillbook-dev/drillbook/internal/scenario"
	"github.com/drillbook-dev/drillbook/internal/store/sqlite"
)

// cycleSteps is the full selected step sequence.
var cycleSteps = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// Handler serves the activity API over a store.
type Handler struct {
	store      *sqlite.Store
	attemptLog string
}

// NewHandler creates a Handler.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{store: store}
}

// WithAttemptLog enables CSV attempt logging to path. Empty disables it.
func (h *Handler) WithAttemptLog(path string) *Handler {
	h.attemptLog = path
	return h
}

// createRequest mirrors the generation config over JSON.
type createRequest struct {
	BusinessName   string `json:"businessName"`
	BusinessType   string `json:"businessType"`
	Ownership      string `json:"ownership"`
	Inventory      string `json:"inventory"`
	Transactions   int    `json:"transactions"`
	TradeDiscounts bool   `json:"tradeDiscounts"`
	CashDiscounts  bool   `json:"cashDiscounts"`
	Freight        bool   `json:"freight"`
	SubsequentYear bool   `json:"subsequentYear"`
	ExpenseMethod  string `json:"deferredExpenseMethod"`
	IncomeMethod   string `json:"deferredIncomeMethod"`
	Year           int    `json:"year"`
	Month          int    `json:"month"`
	Seed           int64  `json:"seed"`
}

type createResponse struct {
	ID       string          `json:"id"`
	Activity *model.Activity `json:"activity"`
}

// CreateActivity generates and persists a new activity instance.
func (h *Handler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	a, err := scenario.Generate(model.Config{
		BusinessName:   req.BusinessName,
		BusinessType:   model.BusinessType(req.BusinessType),
		Ownership:      model.OwnershipForm(req.Ownership),
		Inventory:      model.InventorySystem(req.Inventory),
		Transactions:   req.Transactions,
		TradeDiscounts: req.TradeDiscounts,
		CashDiscounts:  req.CashDiscounts,
		Freight:        req.Freight,
		SubsequentYear: req.SubsequentYear,
		ExpenseMethod:  model.DeferralMethod(req.ExpenseMethod),
		IncomeMethod:   model.DeferralMethod(req.IncomeMethod),
		Year:           req.Year,
		Month:          time.Month(req.Month),
		Seed:           req.Seed,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	instanceID, err := h.store.SaveActivity(a)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{ID: instanceID, Activity: a})
}

// GetActivity returns a stored activity instance.
func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	a, err := h.store.GetActivity(chi.URLParam(r, "id"))
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type progressResponse struct {
	Statuses map[int]progress.Status `json:"statuses"`
	States   map[int]progress.State  `json:"states"`
}

// GetProgress returns per-step statuses and derived gate states.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, "id")
	if _, err := h.store.GetActivity(instanceID); errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	statuses, err := h.store.GetStatuses(instanceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	statuses = withDefaults(statuses)
	writeJSON(w, http.StatusOK, progressResponse{
		Statuses: statuses,
		States:   progress.States(cycleSteps, statuses),
	})
}

type validateResponse struct {
	Result grade.Result    `json:"result"`
	Status progress.Status `json:"status"`
	State  progress.State  `json:"state"`
}

// ValidateStep grades the posted answer for a step, folds the verdict
// into the step's status, and persists both.
func (h *Handler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	instanceID := chi.URLParam(r, "id")
	step, err := strconv.Atoi(chi.URLParam(r, "step"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid step")
		return
	}

	a, err := h.store.GetActivity(instanceID)
	if errors.Is(err, sqlite.ErrNotFound) {
		writeError(w, http.StatusNotFound, "activity not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	statuses, err := h.store.GetStatuses(instanceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	statuses = withDefaults(statuses)

	states := progress.States(cycleSteps, statuses)
	switch states[step] {
	case progress.StateLocked:
		writeError(w, http.StatusConflict, "step is locked")
		return
	case progress.StateCompleted:
		writeError(w, http.StatusConflict, "step already completed")
		return
	case "":
		writeError(w, http.StatusBadRequest, "unknown step")
		return
	}

	answer, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading answer")
		return
	}

	result, err := grade.Validate(step, a, answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	status := progress.Apply(statuses[step], result.IsCorrect)
	if h.attemptLog != "" {
		// A log write failure never fails the request.
		_ = attemptlog.Append(h.attemptLog, attemptlog.Entry{
			Timestamp:  time.Now().UTC(),
			ActivityID: instanceID,
			Step:       step,
			Score:      result.Score,
			MaxScore:   result.MaxScore,
			Letter:     result.Letter,
		})
	}
	if err := h.store.SaveAnswer(instanceID, step, answer); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if err := h.store.SaveStatus(instanceID, step, status); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	statuses[step] = status
	writeJSON(w, http.StatusOK, validateResponse{
		Result: result,
		Status: status,
		State:  progress.States(cycleSteps, statuses)[step],
	})
}

// withDefaults fills unseen steps with a fresh status.
func withDefaults(statuses map[int]progress.Status) map[int]progress.Status {
	out := make(map[int]progress.Status, len(cycleSteps))
	for _, step := range cycleSteps {
		if st, ok := statuses[step]; ok {
			out[step] = st
		} else {
			out[step] = progress.NewStatus()
		}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
