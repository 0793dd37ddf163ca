// Package htn is an automated planner that interleaves Hierarchical Task
// Networks (HTN) with Hierarchical Goal Networks (HGN). Given an initial
// world state and an ordered todo list of actions, tasks, unigoals, and
// multigoals, FindPlan returns a totally-ordered sequence of primitive
// actions that accomplishes every item on the list, or reports failure.
//
// This package is a Go reimplementation of the algorithm in GTPyhop
// (Dana Nau, University of Maryland): a single depth-first search dispatches
// on four heterogeneous item kinds, preserves state across refinement steps,
// restores state on backtrack by never mutating in place, interleaves
// auto-generated verification items so buggy methods are caught, and drives
// an execute-and-replan outer loop.
//
// The package does not know about any particular domain (blocks world,
// logistics, travel, ...); those are test-harness collaborators built on top
// of the registry in domain.go.
package htn

// Verbosity controls how much diagnostic tracing FindPlan and
// RunLazyLookahead print to stdout while they run. It has no effect on
// planning results.
//
//	0: print nothing
//	1: print the initial parameters and the answer
//	2: also print a message on each recursive call
//	3: also print intermediate computations
var Verbosity = 1
