package api

import (
	"fmt"

	"github.com/dananau/gtpyhop-go/internal/htn"
	"github.com/dananau/gtpyhop-go/pkg/planapi"
)

// stateFromJSON builds an htn.State from its wire encoding.
func stateFromJSON(in *planapi.StateJSON) *htn.State {
	s := htn.NewState(in.Name)
	for varName, vals := range in.Vars {
		for arg, v := range vals {
			s.Set(varName, arg, v)
		}
	}
	return s
}

// stateToJSON encodes an htn.State for an HTTP response.
func stateToJSON(s *htn.State) *planapi.StateJSON {
	out := &planapi.StateJSON{Name: s.Name, Vars: make(map[string]map[string]any, len(s.Vars))}
	for varName, vals := range s.Vars {
		copied := make(map[string]any, len(vals))
		for arg, v := range vals {
			copied[arg] = v
		}
		out.Vars[varName] = copied
	}
	return out
}

// multigoalFromJSON builds an htn.Multigoal from its wire encoding.
func multigoalFromJSON(in *planapi.MultigoalJSON) *htn.Multigoal {
	g := htn.NewMultigoal(in.Name)
	for varName, vals := range in.Vars {
		for arg, v := range vals {
			g.Set(varName, arg, v)
		}
	}
	return g
}

// todoFromJSON decodes a wire todo list into the core's TodoItem sum type.
func todoFromJSON(items []planapi.TodoItemJSON) ([]htn.TodoItem, error) {
	out := make([]htn.TodoItem, 0, len(items))
	for i, item := range items {
		switch item.Kind {
		case "action":
			out = append(out, htn.Action(item.Name, item.Args...))
		case "task":
			out = append(out, htn.Task(item.Name, item.Args...))
		case "unigoal":
			out = append(out, htn.Goal(item.Var, item.Arg, item.Value))
		case "multigoal":
			if item.Multigoal == nil {
				return nil, fmt.Errorf("todo[%d]: kind \"multigoal\" requires a multigoal body", i)
			}
			out = append(out, multigoalFromJSON(item.Multigoal))
		default:
			return nil, fmt.Errorf("todo[%d]: unrecognized kind %q", i, item.Kind)
		}
	}
	return out, nil
}

// planToJSON encodes a plan's action calls for an HTTP response.
func planToJSON(plan htn.Plan) []planapi.ActionJSON {
	out := make([]planapi.ActionJSON, len(plan))
	for i, a := range plan {
		out[i] = planapi.ActionJSON{Name: a.Name, Args: a.Args}
	}
	return out
}
