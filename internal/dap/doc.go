// Package dap implements the DAP2 variable model: a closed set of variable
// kinds sharing one capability contract (declaration and value printing,
// semantic checks, deep cloning, XDR serialization), and the Structure
// container that aggregates them into ordered, recursively nested trees.
//
// Trees are not safe for concurrent use. A caller sharing a tree between
// goroutines must hold one lock for the duration of each top-level call.
package dap
