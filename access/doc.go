// Package access reads and writes unexported object members for white-box
// testing.
//
// It bypasses field visibility through the reflect and unsafe packages, so
// tests can inspect and prime internal state without widening production
// APIs. Use it in test code only.
//
//	widget := &Widget{}
//	access.SetField(widget, "count", 3)
//	n, _ := access.Field(widget, "count")
//
// Go draws one hard line the package cannot cross: unexported methods are
// invisible to reflection, so Call and Construct report them as
// inaccessible members rather than invoking them. Go also has no static
// fields or constructors; the closest equivalents offered here are
// Alloc/New for initializer-bypassed instances and Construct for invoking
// an initializer-style method on an existing instance.
//
// All failures are immediate and final: member-not-found, inaccessible,
// invalid-target, or type-mismatch errors from the errors package.
package access
