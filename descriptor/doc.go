// Package descriptor describes the shape of values: primitive and boxed
// kinds, arrays, lists, sets, maps, opaque named types and unresolved
// placeholders.
//
// Descriptors are immutable values built with the constructors of this
// package, captured from Go types with For and Of, or parsed from their
// textual form with Parse.
package descriptor
