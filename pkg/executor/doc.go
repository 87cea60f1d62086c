// Package executor applies a plan to the filesystem.
//
// Entries are processed sequentially in plan order. For each resolved entry
// the executor creates the destination's parent (skipped in dry-run), refuses
// to overwrite anything that already exists, and moves the entry. The
// overwrite check runs in both modes. Destinations claimed earlier in the
// same run count as occupied, and a dry run replays earlier moves when it
// looks at the disk, so it reports exactly the conflicts a real run would
// hit. Failures downgrade a single entry and never stop the run.
package executor
