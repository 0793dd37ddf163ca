package htn

import (
	"fmt"
	"os"
)

// DefaultMaxTries is how many plan/execute/replan cycles RunLazyLookahead
// attempts before giving up.
const DefaultMaxTries = 10

// RunLazyLookahead repeatedly plans from the current state and executes the
// resulting plan one action at a time, replanning from scratch whenever an
// action's command fails unexpectedly during execution. This models an
// agent that expects the world to only partly match its model: it commits
// to a full plan, but re-derives one as soon as reality disagrees.
//
// A command registered for an action's name is used to execute it; if none
// is registered, the action function itself is used to simulate execution.
// RunLazyLookahead returns the final state reached, and an error only when
// planning itself fails fatally (ErrMalformedItem,
// ErrMethodVerificationFailed) or finds no plan from the state reached
// (ErrPlanningFailed). Running out of tries prints a warning at
// Verbosity >= 1 and returns the current state without an error.
func RunLazyLookahead(state *State, todo []TodoItem, maxTries int) (*State, error) {
	if maxTries <= 0 {
		maxTries = DefaultMaxTries
	}
	if CurrentDomain == nil {
		return nil, ErrNoCurrentDomain
	}

	for tries := 1; tries <= maxTries; tries++ {
		if Verbosity >= 1 {
			fmt.Fprintf(os.Stdout, "RunLazyLookahead> tries %d, state %s\n", tries, state.Name)
		}
		plan, ok, err := FindPlan(state, todo)
		if err != nil {
			return nil, err
		}
		if !ok {
			if Verbosity >= 1 {
				fmt.Fprintf(os.Stdout, "RunLazyLookahead> no plan found; giving up\n")
			}
			return state, ErrPlanningFailed
		}
		if len(plan) == 0 {
			if Verbosity >= 1 {
				fmt.Fprintf(os.Stdout, "RunLazyLookahead> empty plan, nothing left to do\n")
			}
			return state, nil
		}

		replan := false
		for _, step := range plan {
			newState, ranOK := runCommand(state, step)
			if !ranOK {
				if Verbosity >= 1 {
					fmt.Fprintf(os.Stdout, "RunLazyLookahead> command for %v failed; replanning\n", step)
				}
				replan = true
				break
			}
			state = newState
		}
		if !replan {
			return state, nil
		}
	}
	if Verbosity >= 1 {
		fmt.Fprintf(os.Stdout, "RunLazyLookahead> max tries (%d) exceeded\n", maxTries)
	}
	return state, nil
}

func runCommand(state *State, step ActionCall) (*State, bool) {
	if cmd, ok := CurrentDomain.commands[step.Name]; ok {
		return cmd(state.Copy(), step.Args...)
	}
	if action, ok := CurrentDomain.actions[step.Name]; ok {
		if Verbosity >= 2 {
			fmt.Fprintf(os.Stdout, "RunLazyLookahead> no command registered for %q, falling back to the action itself\n", step.Name)
		}
		return action(state.Copy(), step.Args...)
	}
	return nil, false
}
