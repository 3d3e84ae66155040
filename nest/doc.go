/* Copyright the nest-go authors. All Rights Reserved. */

// Package nest tracks the structural state of a streaming encode or decode
// session: which maps and sequences are currently open, and whether the
// innermost map expects a key or a value next.
//
// A driving engine reports one structural event per call (BeginMap,
// BeginSeq, Key, Value, EndMap, EndSeq) and the Stack either records it or
// rejects it with a typed error, so malformed streams are caught before
// they produce corrupt output. The stack knows nothing about wire formats
// or value content; it validates shape only.
//
// Shallow nesting, the common case, is tracked without any dynamic
// allocation, which makes the package suitable for heap-constrained
// targets. See Stack and Config for the storage model.
package nest
