// Package planapi holds the wire types for the planning HTTP service: the
// JSON-friendly encodings of the core's State, Multigoal, and TodoItem
// values used by internal/api's request and response bodies.
package planapi

// StateJSON is the wire encoding of htn.State: a named bag of state
// variables, each mapping an argument name to a JSON value.
type StateJSON struct {
	Name string                    `json:"name"`
	Vars map[string]map[string]any `json:"vars"`
}

// MultigoalJSON is the wire encoding of htn.Multigoal; same shape as
// StateJSON, interpreted as desired rather than actual assignments.
type MultigoalJSON struct {
	Name string                    `json:"name"`
	Vars map[string]map[string]any `json:"vars"`
}

// TodoItemJSON is the wire encoding of one htn.TodoItem. Kind selects which
// of the fields below are populated, one set for each of the four item
// kinds, mirroring the sum type the core uses internally:
//
//	"action"    -> Name, Args
//	"task"      -> Name, Args
//	"unigoal"   -> Var, Arg, Value
//	"multigoal" -> Multigoal
type TodoItemJSON struct {
	Kind      string         `json:"kind"`
	Name      string         `json:"name,omitempty"`
	Args      []any          `json:"args,omitempty"`
	Var       string         `json:"var,omitempty"`
	Arg       string         `json:"arg,omitempty"`
	Value     any            `json:"value,omitempty"`
	Multigoal *MultigoalJSON `json:"multigoal,omitempty"`
}

// ActionJSON is the wire encoding of one htn.ActionCall as it appears in a
// PlanResponse's plan.
type ActionJSON struct {
	Name string `json:"name"`
	Args []any  `json:"args"`
}

// PlanRequest is the body of POST /domains/{name}/plan.
type PlanRequest struct {
	State *StateJSON     `json:"state"`
	Todo  []TodoItemJSON `json:"todo"`
}

// PlanResponse is the body returned by POST /domains/{name}/plan.
type PlanResponse struct {
	Found bool         `json:"found"`
	Plan  []ActionJSON `json:"plan,omitempty"`
	Error string       `json:"error,omitempty"`
}

// ActRequest is the body of POST /domains/{name}/act. MaxTries defaults to
// the domain's configured max_tries (DomainInfo.MaxTries) when zero.
type ActRequest struct {
	State    *StateJSON     `json:"state"`
	Todo     []TodoItemJSON `json:"todo"`
	MaxTries int            `json:"max_tries,omitempty"`
}

// ActResponse is the body returned by POST /domains/{name}/act.
type ActResponse struct {
	State *StateJSON `json:"state"`
	Error string     `json:"error,omitempty"`
}

// DomainInfo describes one registered domain for GET /domains and
// GET /domains/{name}.
type DomainInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Actions     []string `json:"actions"`
	Tasks       []string `json:"tasks"`
	MaxTries    int      `json:"max_tries"`
}
