// Package core orchestrates the strip and restore cycle around a commit.
//
// The engine ties together the repository client, the pattern engine,
// the backup manifest and a durable state machine. Pre-commit and
// post-commit run as separate short lived processes, so everything the
// cycle needs to survive between them, backups and machine state, is
// persisted under the git directory before working files are touched.
//
// The cycle is idle, stripping, stripped, committing, restoring, idle.
// Any process finding the machine off idle with pending backups first
// restores them: positional patterns address pristine content, and
// stripping twice would remove the wrong lines.
package core
