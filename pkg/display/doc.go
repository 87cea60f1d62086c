// Package display renders plans and command results for humans.
//
// The Presenter owns two streams. Summaries and list output go to stdout;
// notices, per-entry errors and missing-directory reports go to stderr so
// `check --list` can be piped safely. Presentation settings are passed in
// explicitly; nothing below this package knows about colors or glyphs.
package display
