package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSystemEndpoints(t *testing.T) {
	srv, cleanup := setupServer(t, testConfig())
	defer cleanup()

	res, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var health map[string]any
	if err := json.NewDecoder(res.Body).Decode(&health); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	res.Body.Close()
	if health["status"] != "ok" {
		t.Fatalf("unexpected health body: %#v", health)
	}

	res, err = http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	var version map[string]any
	if err := json.NewDecoder(res.Body).Decode(&version); err != nil {
		t.Fatalf("decode version: %v", err)
	}
	res.Body.Close()
	if version["version"] != "test" {
		t.Fatalf("unexpected version body: %#v", version)
	}
}
