package api_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/shramsetu/shramsetu/api"
	"github.com/shramsetu/shramsetu/pkg/repository"
	"github.com/shramsetu/shramsetu/pkg/repository/mock"
)

// Error-mapping checks against mocks, no database involved.

func mockRouter(m *mock.Mocks) *mux.Router {
	wh := api.NewWorkersHandler(m.Workers, m.History, "test-secret", time.Hour)
	ch := api.NewCustomersHandler(m.Customers)

	r := mux.NewRouter()
	r.HandleFunc("/api/workers", wh.Create).Methods("POST")
	r.HandleFunc("/api/workers/{id:[0-9]+}", wh.Get).Methods("GET")
	r.HandleFunc("/api/workers/{id:[0-9]+}", wh.Update).Methods("PUT")
	r.HandleFunc("/api/workers/{id:[0-9]+}/history", wh.AddHistory).Methods("POST")
	r.HandleFunc("/api/customers", ch.Create).Methods("POST")
	return r
}

func TestCreateWorkerStoreFailureMapsTo500(t *testing.T) {
	m := mock.NewMocks()
	m.Workers.CreateErr = errors.New("disk full")
	r := mockRouter(m)

	body := []byte(`{"name":"Ravi","number":"9000000001","location":"Pune","skill":"Electrician","adhaar_id":"1111-2222-3333"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/workers", bytes.NewReader(body)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}

func TestCreateWorkerDuplicateMapsTo400(t *testing.T) {
	m := mock.NewMocks()
	m.Workers.CreateErr = repository.ErrDuplicateKey
	r := mockRouter(m)

	body := []byte(`{"name":"Ravi","number":"9000000001","location":"Pune","skill":"Electrician","adhaar_id":"1111-2222-3333"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/workers", bytes.NewReader(body)))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestAddHistoryForeignKeyMapsTo400(t *testing.T) {
	m := mock.NewMocks()
	m.History.AddErr = repository.ErrForeignKey
	r := mockRouter(m)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/workers/7/history", bytes.NewReader([]byte(`{"job_title":"Fan Repair","wage":150}`))))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestUpdateWorkerNotFoundMapsTo404(t *testing.T) {
	m := mock.NewMocks()
	r := mockRouter(m)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/workers/3", bytes.NewReader([]byte(`{"location":"Nashik"}`))))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestCreateCustomerStoreFailureMapsTo500(t *testing.T) {
	m := mock.NewMocks()
	m.Customers.CreateErr = errors.New("disk full")
	r := mockRouter(m)

	body := []byte(`{"name":"Sita","number":"9000000009","location":"Pune","adhaar_id":"7777-8888-9999"}`)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/customers", bytes.NewReader(body)))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", rec.Code)
	}
}
