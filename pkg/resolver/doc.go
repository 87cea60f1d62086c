// Package resolver computes destinations for misplaced entries.
//
// Three rules.Destination implementations live here: StaticDestination
// (a fixed directory), PatternDestination (first matching route wins, with
// an optional static fallback) and ScriptDestination (an external program
// prints the directory). Resolve turns a destination fragment into a Move
// without touching the filesystem; existence checks and directory creation
// belong to the executor.
package resolver
