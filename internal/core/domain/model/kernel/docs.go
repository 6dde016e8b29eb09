// Package kernel holds the primitives shared by every aggregate of the
// parcels domain: identifiers and the clock abstraction used to stamp
// creation and modification times.
package kernel
