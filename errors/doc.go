// Package errors provides unified error handling for testkit packages.
// It implements a structured error type with machine-readable codes for the
// two failure families the toolkit has: reflective member access
// (not found, inaccessible, bad target, bad argument) and registry
// snapshot preconditions (snapshot already held, no snapshot held).
//
// All errors are fatal to the calling test and are surfaced immediately,
// never retried.
package errors
