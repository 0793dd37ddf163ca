package htn

import "errors"

// ErrNoCurrentDomain is returned by the package-level Declare* helpers when
// they are called before any domain has been made current with UseDomain.
var ErrNoCurrentDomain = errors.New("htn: no current domain")

// ErrMalformedItem is a fatal planning error: a todo-list item's shape does
// not match any of the four dispatchable kinds, or a method returned a
// sub-todo-list containing something that isn't a TodoItem. It bubbles out
// of FindPlan past every method-retry loop; it is never treated as "try the
// next method".
var ErrMalformedItem = errors.New("htn: malformed todo item")

// ErrMethodVerificationFailed is a fatal planning error: a unigoal or
// multigoal method claimed to achieve a goal, but the goal does not actually hold in
// the resulting state. Like ErrMalformedItem, it bubbles out immediately.
var ErrMethodVerificationFailed = errors.New("htn: method verification failed")

// ErrPlanningFailed is returned by RunLazyLookahead when FindPlan could not
// find a plan at all, i.e. the domain's own methods and actions are
// exhausted rather than anything failing during execution.
var ErrPlanningFailed = errors.New("htn: planning failed")
