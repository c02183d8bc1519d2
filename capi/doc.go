// Package capi exposes FontCache through opaque integer handles and
// fixed-layout structs, so a foreign runtime can drive it through a thin
// cgo shim (see cmd/libglyphatlas).
//
// Every function accepts the null handle 0, or a handle that was already
// freed, and answers with zero values instead of failing. Invalid code
// points (surrogates, values above U+10FFFF) behave like characters the
// font does not contain.
//
// Calls on one handle are serialized; different handles may be used from
// different threads.
package capi
