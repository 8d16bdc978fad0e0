package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/shramsetu/shramsetu/internal/models"
	"github.com/shramsetu/shramsetu/pkg/repository"
)

const maxBodyBytes = 1 << 20

type WorkersHandler struct {
	workerRepo    repository.WorkerRepo
	historyRepo   repository.HistoryRepo
	jwtSecret     string
	tokenDuration time.Duration
}

// NewWorkersHandler creates a new WorkersHandler with required dependencies.
func NewWorkersHandler(wr repository.WorkerRepo, hr repository.HistoryRepo, jwtSecret string, tokenDuration time.Duration) *WorkersHandler {
	return &WorkersHandler{workerRepo: wr, historyRepo: hr, jwtSecret: jwtSecret, tokenDuration: tokenDuration}
}

type createWorkerRequest struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	Location string `json:"location"`
	Skill    string `json:"skill"`
	AdhaarID string `json:"adhaar_id"`
}

type createWorkerResponse struct {
	ID      int64          `json:"id"`
	Message string         `json:"message"`
	Worker  *models.Worker `json:"worker"`
}

type loginRequest struct {
	Number   string `json:"number"`
	AdhaarID string `json:"adhaar_id"`
}

type loginResponse struct {
	Message string         `json:"message"`
	Worker  *models.Worker `json:"worker"`
	Token   string         `json:"token,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type addHistoryRequest struct {
	JobTitle string `json:"job_title"`
	Wage     int64  `json:"wage"`
}

type addHistoryResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

func (h *WorkersHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerRepo.ListWorkers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if workers == nil {
		workers = []models.Worker{}
	}

	writeJSON(w, workers, http.StatusOK)
}

func (h *WorkersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid worker id")
		return
	}

	wk, err := h.workerRepo.GetWorker(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if wk == nil {
		writeError(w, http.StatusNotFound, "Worker not found")
		return
	}

	writeJSON(w, wk, http.StatusOK)
}

func (h *WorkersHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if !validBody(r.Context(), workerCreateSchema, body) {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	var req createWorkerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	wk := &models.Worker{
		Name:     req.Name,
		Number:   req.Number,
		Location: req.Location,
		Skill:    req.Skill,
		AdhaarID: req.AdhaarID,
	}

	id, err := h.workerRepo.CreateWorker(r.Context(), wk)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			writeError(w, http.StatusBadRequest, "Adhaar ID already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	wk.ID = id
	writeJSON(w, createWorkerResponse{ID: id, Message: "Worker added successfully", Worker: wk}, http.StatusOK)
}

// Update applies a partial update to number, location and skill. Name and
// adhaar_id sent in the body are ignored; they are immutable after
// registration.
func (h *WorkersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid worker id")
		return
	}

	var patch models.WorkerPatch
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.workerRepo.UpdateWorker(r.Context(), id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Worker not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, messageResponse{Message: "Worker profile updated successfully"}, http.StatusOK)
}

// Login is a credential-pair lookup, not a password scheme: both number and
// adhaar_id must match a single worker row. On success a signed token is
// issued so clients can prove ownership on later mutations.
func (h *WorkersHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Number == "" || req.AdhaarID == "" {
		writeError(w, http.StatusBadRequest, "Phone number and Adhaar ID are required")
		return
	}

	wk, err := h.workerRepo.GetWorkerByCredentials(r.Context(), req.Number, req.AdhaarID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if wk == nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"worker_id": wk.ID,
		"exp":       time.Now().Add(h.tokenDuration).Unix(),
	})
	tokenStr, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, loginResponse{Message: "Login successful", Worker: wk, Token: tokenStr}, http.StatusOK)
}

func (h *WorkersHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid worker id")
		return
	}

	entries, err := h.historyRepo.ListHistoryByWorker(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if entries == nil {
		entries = []models.WorkHistoryEntry{}
	}

	writeJSON(w, entries, http.StatusOK)
}

func (h *WorkersHandler) AddHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid worker id")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if !validBody(r.Context(), historyCreateSchema, body) {
		writeError(w, http.StatusBadRequest, "Job title and a non-negative wage are required")
		return
	}

	var req addHistoryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	entry := &models.WorkHistoryEntry{WorkerID: id, JobTitle: req.JobTitle, Wage: req.Wage}
	entryID, err := h.historyRepo.AddHistoryEntry(r.Context(), entry)
	if err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			writeError(w, http.StatusBadRequest, "Worker does not exist")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, addHistoryResponse{ID: entryID, Message: "Work history added"}, http.StatusOK)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
