package api

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dananau/gtpyhop-go/internal/htn"
	"github.com/dananau/gtpyhop-go/pkg/planapi"
)

// Handler provides HTTP handlers for the planning endpoints.
type Handler struct {
	registry *Registry
}

// NewHandler creates a new planning handler over the given registry.
func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

// ListDomains handles GET /domains - returns every registered domain's info.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	names := h.registry.List()
	infos := make([]planapi.DomainInfo, 0, len(names))
	for _, name := range names {
		entry, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, domainInfo(name, entry))
	}
	writeJSON(w, http.StatusOK, infos)
}

// GetDomain handles GET /domains/{name} - returns one domain's info: its
// name, description, action and task names, and max_tries.
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, err := h.registry.Get(name)
	if err != nil {
		writeError(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, domainInfo(name, entry))
}

func domainInfo(name string, entry *Entry) planapi.DomainInfo {
	return planapi.DomainInfo{
		Name:        name,
		Description: entry.Description,
		Actions:     entry.Domain.Actions(),
		Tasks:       entry.Domain.TaskNames(),
		MaxTries:    entry.MaxTries,
	}
}

// PlanDomain handles POST /domains/{name}/plan - runs htn.FindPlan against
// the given domain with the request's state and todo list.
func (h *Handler) PlanDomain(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, err := h.registry.Get(name)
	if err != nil {
		writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	var req planapi.PlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	state, todo, err := resolveStateAndTodo(entry, req.State, req.Todo)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	unlock := h.registry.Use(entry)
	plan, found, planErr := htn.FindPlan(state, todo)
	unlock()

	if planErr != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(planErr, htn.ErrMalformedItem) {
			status = http.StatusBadRequest
		}
		log.Printf("plan %s: fatal planning error: %v", name, planErr)
		writeJSON(w, status, planapi.PlanResponse{Found: false, Error: planErr.Error()})
		return
	}

	resp := planapi.PlanResponse{Found: found}
	if found {
		resp.Plan = planToJSON(plan)
	}
	writeJSON(w, http.StatusOK, resp)
}

// ActDomain handles POST /domains/{name}/act - runs htn.RunLazyLookahead,
// planning, executing commands, and replanning against the domain's
// registered commands (falling back to its actions) until the todo list is
// satisfied or max_tries is exhausted.
func (h *Handler) ActDomain(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, err := h.registry.Get(name)
	if err != nil {
		writeError(w, err.Error(), http.StatusNotFound)
		return
	}

	var req planapi.ActRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	state, todo, err := resolveStateAndTodo(entry, req.State, req.Todo)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	maxTries := req.MaxTries
	if maxTries <= 0 {
		maxTries = entry.MaxTries
	}

	unlock := h.registry.Use(entry)
	finalState, actErr := htn.RunLazyLookahead(state, todo, maxTries)
	unlock()

	if actErr != nil && !errors.Is(actErr, htn.ErrPlanningFailed) {
		log.Printf("act %s: fatal error: %v", name, actErr)
		writeJSON(w, http.StatusUnprocessableEntity, planapi.ActResponse{Error: actErr.Error()})
		return
	}

	// Name the returned state after the domain and this call, the way the
	// reference implementation's CopyNamed is meant for, rather than handing
	// back the planner's unnamed internal scratch copy.
	resp := planapi.ActResponse{State: stateToJSON(finalState.CopyNamed(name + "_result"))}
	if actErr != nil {
		resp.Error = actErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// resolveStateAndTodo fills in the domain's prototypical initial state when
// the request omits one, and decodes the wire todo list.
func resolveStateAndTodo(entry *Entry, stateJSON *planapi.StateJSON, todoJSON []planapi.TodoItemJSON) (*htn.State, []htn.TodoItem, error) {
	var state *htn.State
	if stateJSON != nil {
		state = stateFromJSON(stateJSON)
	} else {
		state = entry.InitialFn()
	}
	todo, err := todoFromJSON(todoJSON)
	if err != nil {
		return nil, nil, err
	}
	return state, todo, nil
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}
