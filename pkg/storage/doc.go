// Copyright © 2018 One Concern

// Package storage provides an interface to handle backend storage objects.
//
// The veil metadata area (backup records, state snapshots) is written through
// this interface. The only backend is the local file system: metadata never
// leaves the repository's git directory.
package storage
