package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/shramsetu/shramsetu/internal/models"
	"github.com/shramsetu/shramsetu/pkg/repository"
)

// Customer endpoints mirror the worker ones minus skill and minus login;
// customer sessions are a client-side concern in this version.
type CustomersHandler struct {
	customerRepo repository.CustomerRepo
}

func NewCustomersHandler(cr repository.CustomerRepo) *CustomersHandler {
	return &CustomersHandler{customerRepo: cr}
}

type createCustomerRequest struct {
	Name     string `json:"name"`
	Number   string `json:"number"`
	Location string `json:"location"`
	AdhaarID string `json:"adhaar_id"`
}

type createCustomerResponse struct {
	ID       int64            `json:"id"`
	Message  string           `json:"message"`
	Customer *models.Customer `json:"customer"`
}

func (h *CustomersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	c, err := h.customerRepo.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if c == nil {
		writeError(w, http.StatusNotFound, "Customer not found")
		return
	}

	writeJSON(w, c, http.StatusOK)
}

func (h *CustomersHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if !validBody(r.Context(), customerCreateSchema, body) {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	var req createCustomerRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	c := &models.Customer{
		Name:     req.Name,
		Number:   req.Number,
		Location: req.Location,
		AdhaarID: req.AdhaarID,
	}

	id, err := h.customerRepo.CreateCustomer(r.Context(), c)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			writeError(w, http.StatusBadRequest, "Adhaar ID already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	c.ID = id
	writeJSON(w, createCustomerResponse{ID: id, Message: "Customer added successfully", Customer: c}, http.StatusOK)
}

func (h *CustomersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}

	var patch models.CustomerPatch
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := h.customerRepo.UpdateCustomer(r.Context(), id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, messageResponse{Message: "Customer profile updated successfully"}, http.StatusOK)
}
