//go:build integration
// +build integration

// Package integration provides end-to-end HTTP tests for the planning
// service, running the same router cmd/server/main.go assembles.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dananau/gtpyhop-go/internal/api"
	"github.com/dananau/gtpyhop-go/internal/auth"
	"github.com/dananau/gtpyhop-go/internal/config"
	"github.com/dananau/gtpyhop-go/pkg/planapi"
)

var testServer *httptest.Server

// TestMain sets up and tears down the test server for all integration tests.
func TestMain(m *testing.M) {
	registry := api.DefaultRegistry()
	handler := api.NewHandler(registry)
	authMiddleware := auth.NewMiddleware(&config.AuthConfig{})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Route("/domains", func(r chi.Router) {
		r.Get("/", handler.ListDomains)
		r.Get("/{name}", handler.GetDomain)
		r.With(authMiddleware.Authenticate).Post("/{name}/plan", handler.PlanDomain)
		r.With(authMiddleware.Authenticate).Post("/{name}/act", handler.ActDomain)
	})

	testServer = httptest.NewServer(r)
	code := m.Run()
	testServer.Close()
	os.Exit(code)
}

func TestHealthEndpoint(t *testing.T) {
	resp, err := http.Get(testServer.URL + "/health")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}
}

func TestPlanSussmanAnomaly(t *testing.T) {
	body := planapi.PlanRequest{
		Todo: []planapi.TodoItemJSON{
			{
				Kind: "multigoal",
				Multigoal: &planapi.MultigoalJSON{
					Name: "goal",
					Vars: map[string]map[string]any{
						"pos": {"a": "b", "b": "c"},
					},
				},
			},
		},
	}
	buf, _ := json.Marshal(body)

	resp, err := http.Post(testServer.URL+"/domains/blocksworld/plan", "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var planResp planapi.PlanResponse
	if err := json.NewDecoder(resp.Body).Decode(&planResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !planResp.Found {
		t.Fatalf("expected a plan, got error %q", planResp.Error)
	}
	if len(planResp.Plan) != 6 {
		t.Errorf("expected 6-step Sussman-anomaly plan, got %d: %v", len(planResp.Plan), planResp.Plan)
	}
}

func TestActLogisticsConvergesToEmptyPlan(t *testing.T) {
	body := planapi.ActRequest{
		Todo: []planapi.TodoItemJSON{
			{Kind: "unigoal", Var: "at", Arg: "package1", Value: "location2"},
			{Kind: "unigoal", Var: "at", Arg: "package2", Value: "location3"},
		},
	}
	buf, _ := json.Marshal(body)

	resp, err := http.Post(testServer.URL+"/domains/logistics/act", "application/json", bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var actResp planapi.ActResponse
	if err := json.NewDecoder(resp.Body).Decode(&actResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if actResp.Error != "" {
		t.Fatalf("unexpected error: %s", actResp.Error)
	}
	if actResp.State.Vars["at"]["package1"] != "location2" {
		t.Errorf("expected package1 at location2, got %v", actResp.State.Vars["at"]["package1"])
	}
	if actResp.State.Vars["at"]["package2"] != "location3" {
		t.Errorf("expected package2 at location3, got %v", actResp.State.Vars["at"]["package2"])
	}
}
