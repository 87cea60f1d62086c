// Package testutil provides helpers shared by shinydir tests: an in-memory
// filesystem, tree builders and small extraction helpers for plan results.
package testutil
