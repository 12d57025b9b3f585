// Package errors pkg/db/errors.go provides errors for the db package.

package db

import "errors"

var (
	// Core database errors.

	ErrNotFound        = errors.New("not found")
	ErrDeviceExists    = errors.New("device already exists")
	ErrFailedOpenDB    = errors.New("failed to open database")
	ErrFailedToInit    = errors.New("failed to initialize schema")
	ErrFailedToBeginTx = errors.New("failed to begin transaction")

	// Operation errors.

	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToQuery  = errors.New("failed to query")
	ErrFailedToScan   = errors.New("failed to scan")
	ErrFailedToDelete = errors.New("failed to delete")
	ErrFailedToClean  = errors.New("failed to clean")
)
