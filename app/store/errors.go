package store

import "errors"

var (
	// ErrNotFound means the remote collection has no record with the
	// given id. Distinct from a transport failure so edit workflows can
	// show a "record not found" state instead of a generic error.
	ErrNotFound = errors.New("record not found")

	// ErrConflict means the remote collection rejected a record whose
	// business identity (design number, order number) already exists.
	ErrConflict = errors.New("duplicate record")

	// ErrRemote wraps every other remote failure: timeout, non-2xx,
	// connectivity, open circuit. The local collection is untouched
	// when it is returned.
	ErrRemote = errors.New("remote call failed")
)
