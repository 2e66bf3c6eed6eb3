package services

import "errors"

var (
	// ErrNoAuthProvider means AuthFrom was called on a context that never
	// went through WithAuth. It is a wiring bug and is raised as a panic.
	ErrNoAuthProvider = errors.New("auth service used outside its provider")

	ErrNotSignedIn = errors.New("not signed in")
	ErrNotInPage   = errors.New("item is not on the current page")
)
