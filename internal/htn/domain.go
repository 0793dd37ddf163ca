package htn

import (
	"reflect"
	"runtime"
	"strings"
)

// ActionFunc is a primitive action: given the current state and its
// arguments, it returns the resulting state and whether it is applicable.
// Actions must not mutate the state they are given; they return a fresh
// state (typically via State.Copy) on success.
type ActionFunc func(s *State, args ...any) (*State, bool)

// CommandFunc has the same shape as ActionFunc. Commands are the executable
// counterpart of actions used by RunLazyLookahead; they're looked up by the
// action name they were bound to in DeclareCommands, separately from the
// planning-time action table,
// so a domain can simulate an action during planning while actually
// executing something with side effects (e.g. a robot API call).
type CommandFunc func(s *State, args ...any) (*State, bool)

// TaskMethodFunc refines a compound task into a sub-todo-list. The bool
// return reports applicability; a non-nil error is fatal: seekTask stops
// the search and FindPlan returns that error.
type TaskMethodFunc func(s *State, args ...any) ([]TodoItem, bool, error)

// UnigoalMethodFunc refines a single (variable, argument, value) goal into a
// sub-todo-list.
type UnigoalMethodFunc func(s *State, arg string, value any) ([]TodoItem, bool)

// MultigoalMethodFunc refines a multigoal into a sub-todo-list. Unlike task
// and unigoal methods, multigoal methods are not keyed by name: every
// registered multigoal method is tried, in registration order, against
// every multigoal.
type MultigoalMethodFunc func(s *State, mg *Multigoal) ([]TodoItem, bool)

type namedTaskMethod struct {
	name string
	fn   TaskMethodFunc
	id   uintptr
}

type namedUnigoalMethod struct {
	name string
	fn   UnigoalMethodFunc
	id   uintptr
}

type namedMultigoalMethod struct {
	name string
	fn   MultigoalMethodFunc
	id   uintptr
}

// Domain is a named, self-contained registry of actions, commands, and
// methods. Exactly one Domain is "current" at a time (see UseDomain); the
// package-level Declare* helpers operate on it.
type Domain struct {
	Name string

	actions  map[string]ActionFunc
	commands map[string]CommandFunc

	taskMethods       map[string][]namedTaskMethod
	unigoalMethods    map[string][]namedUnigoalMethod
	multigoalMethods  []namedMultigoalMethod
}

// NewDomain creates an empty domain and makes it the current domain.
func NewDomain(name string) *Domain {
	d := &Domain{
		Name:             name,
		actions:          make(map[string]ActionFunc),
		commands:         make(map[string]CommandFunc),
		taskMethods:      make(map[string][]namedTaskMethod),
		unigoalMethods:   make(map[string][]namedUnigoalMethod),
		multigoalMethods: nil,
	}
	CurrentDomain = d
	return d
}

// CurrentDomain is the domain that the package-level Declare* functions
// register into. It is nil until NewDomain or UseDomain is called.
var CurrentDomain *Domain

// UseDomain makes d the current domain.
func UseDomain(d *Domain) { CurrentDomain = d }

func funcName(fn any) (string, uintptr) {
	ptr := reflect.ValueOf(fn).Pointer()
	full := runtime.FuncForPC(ptr).Name()
	if i := strings.LastIndexByte(full, '.'); i >= 0 {
		full = full[i+1:]
	}
	full = strings.TrimSuffix(full, "-fm")
	return full, ptr
}

// DeclareActions registers primitive actions into the current domain,
// keyed by each function's name. Declaring the same function twice (by
// identity, not name) is a no-op.
func DeclareActions(fns ...ActionFunc) error {
	if CurrentDomain == nil {
		return ErrNoCurrentDomain
	}
	for _, fn := range fns {
		name, _ := funcName(fn)
		CurrentDomain.actions[name] = fn
	}
	return nil
}

// CommandBinding associates a command with the name of the action it is the
// executable counterpart of.
type CommandBinding struct {
	ActionName string
	Fn         CommandFunc
}

// Cmd builds a CommandBinding; a short name for use at DeclareCommands call
// sites, e.g. DeclareCommands(htn.Cmd("walk", cWalk)).
func Cmd(actionName string, fn CommandFunc) CommandBinding {
	return CommandBinding{ActionName: actionName, Fn: fn}
}

// DeclareCommands registers the executable counterpart of actions. Unlike
// Python, where "c_" + the action's name could be used to find the command
// function by naming convention, Go function names aren't meant to carry
// that kind of structure, so each binding says explicitly which action it
// executes.
func DeclareCommands(bindings ...CommandBinding) error {
	if CurrentDomain == nil {
		return ErrNoCurrentDomain
	}
	for _, b := range bindings {
		CurrentDomain.commands[b.ActionName] = b.Fn
	}
	return nil
}

// DeclareTaskMethods registers one or more methods for refining the named
// compound task, appended after any existing methods for that name.
// Registering the identical function twice for the same task name is a
// no-op (dedup by function identity, not name, matching GTPyhop).
func DeclareTaskMethods(taskName string, fns ...TaskMethodFunc) error {
	if CurrentDomain == nil {
		return ErrNoCurrentDomain
	}
	existing := CurrentDomain.taskMethods[taskName]
	for _, fn := range fns {
		name, id := funcName(fn)
		if containsTaskID(existing, id) {
			continue
		}
		existing = append(existing, namedTaskMethod{name: name, fn: fn, id: id})
	}
	CurrentDomain.taskMethods[taskName] = existing
	return nil
}

func containsTaskID(methods []namedTaskMethod, id uintptr) bool {
	for _, m := range methods {
		if m.id == id {
			return true
		}
	}
	return false
}

// DeclareUnigoalMethods registers one or more methods for achieving a
// single-variable goal on the named state variable.
func DeclareUnigoalMethods(varName string, fns ...UnigoalMethodFunc) error {
	if CurrentDomain == nil {
		return ErrNoCurrentDomain
	}
	existing := CurrentDomain.unigoalMethods[varName]
	for _, fn := range fns {
		name, id := funcName(fn)
		dup := false
		for _, m := range existing {
			if m.id == id {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		existing = append(existing, namedUnigoalMethod{name: name, fn: fn, id: id})
	}
	CurrentDomain.unigoalMethods[varName] = existing
	return nil
}

// DeclareMultigoalMethods registers one or more general-purpose methods for
// refining a multigoal. SplitMultigoal (see splitter.go), the reference
// m_split_multigoal strategy, is not tried automatically; a domain that
// wants it must include it explicitly, e.g.
// DeclareMultigoalMethods(mySpecificMethod, htn.SplitMultigoal).
func DeclareMultigoalMethods(fns ...MultigoalMethodFunc) error {
	if CurrentDomain == nil {
		return ErrNoCurrentDomain
	}
	for _, fn := range fns {
		name, id := funcName(fn)
		dup := false
		for _, m := range CurrentDomain.multigoalMethods {
			if m.id == id {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		CurrentDomain.multigoalMethods = append(CurrentDomain.multigoalMethods, namedMultigoalMethod{name: name, fn: fn, id: id})
	}
	return nil
}

// Actions returns the names of all registered actions.
func (d *Domain) Actions() []string {
	names := make([]string, 0, len(d.actions))
	for n := range d.actions {
		names = append(names, n)
	}
	return names
}

// TaskNames returns the names of all compound tasks with at least one
// registered method.
func (d *Domain) TaskNames() []string {
	names := make([]string, 0, len(d.taskMethods))
	for n := range d.taskMethods {
		names = append(names, n)
	}
	return names
}
