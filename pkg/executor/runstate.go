package executor

import (
	"path/filepath"
	"strings"
)

type presence int

const (
	// onDisk: the path is untouched by this run, ask the filesystem
	onDisk presence = iota
	// gone: the path or an ancestor was moved away
	gone
	// createdDir: the path is an ancestor of a destination, so it is a directory
	createdDir
)

type moveRecord struct {
	src, dst string
}

// runState is the sequence of moves performed (or simulated) in one run
type runState struct {
	moves   []moveRecord
	targets map[string]bool
}

func newRunState() *runState {
	return &runState{targets: make(map[string]bool)}
}

func (r *runState) record(src, dst string) {
	r.moves = append(r.moves, moveRecord{src: src, dst: dst})
	r.targets[dst] = true
}

func (r *runState) claimed(dst string) bool {
	return r.targets[dst]
}

// locate maps path in the tree after the recorded moves back to the path
// holding the same content before the run. Moves are replayed newest first:
// a path inside a destination continues from the move's source.
func (r *runState) locate(path string) (string, presence) {
	for k := len(r.moves) - 1; k >= 0; k-- {
		m := r.moves[k]
		if rel, ok := within(path, m.dst); ok {
			path = filepath.Join(m.src, rel)
			continue
		}
		if _, ok := within(m.dst, path); ok {
			return path, createdDir
		}
		if _, ok := within(path, m.src); ok {
			return path, gone
		}
	}
	return path, onDisk
}

// within reports whether path is dir or lies below it, with the relative part
func within(path, dir string) (string, bool) {
	if path == dir {
		return ".", true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(path, prefix) {
		return "", false
	}
	return path[len(prefix):], true
}
