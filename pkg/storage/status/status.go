// Copyright © 2018 One Concern

// Package status declares error constants returned by
// implementations of the Store interface.
//
// NOTE: such constants are located in a separate package to avoid
// creating undue cyclical dependencies between pkg/storage and one
// of its implementations.
package status

import "github.com/oneconcern/git-veil/pkg/errors"

var (
	// Sentinel errors returned by implementations of the interface defined by storage

	// ErrNotFound indicates that the fetched key does not exist on storage
	ErrNotFound = errors.New("not found")

	// ErrExists indicates that the key already exists and cannot be overridden
	ErrExists = errors.New("exists already")

	// ErrInvalidKey indicates that the key conflicts with the store's internal layout
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrStorageAPI indicates any other storage backend error
	ErrStorageAPI = errors.New("storage API error")
)
