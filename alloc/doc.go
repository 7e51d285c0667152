// Package alloc defines the allocator capability used by dynlist and ships
// the stock implementations.
//
// # The Capability
//
// An Allocator hands out, resizes and takes back raw blocks of bytes:
//
//	Allocate(size)          -> block
//	Reallocate(size, block) -> block (may move)
//	Release(block)
//
// Any state an implementation needs (an arena's chunks, a budget counter)
// lives on the implementation's receiver, so a single Allocator value stands
// in for the classic function-table-plus-context contract. All three
// operations on a given block must go through the same Allocator value that
// produced it.
//
// Failure is reported as an error, never a panic. A failed Reallocate must
// leave the original block fully intact so callers can keep using it.
//
// # Implementations
//
// Heap: the process-wide default (see Default), backed by the Go heap.
// Stateless and shared; safe for concurrent use.
//
// Arena: a chunked bump allocator for many short-lived lists. Release is a
// no-op; Reset recycles everything at once.
//
// Mmap: anonymous page mappings via golang.org/x/sys/unix. On Linux,
// Reallocate remaps the pages instead of copying. Available on Linux, macOS
// and FreeBSD.
//
// Limit: wraps another Allocator and enforces a byte budget across all live
// blocks. Requests past the budget fail with ErrLimit.
//
// Tracking: wraps another Allocator and counts calls, live bytes and peak
// bytes, with optional structured debug logging.
//
// # Alignment
//
// Every stock implementation returns blocks whose base address is aligned to
// mem.BlockAlign (16 bytes). Custom implementations should do the same so any
// element type can be stored behind a list header.
//
// # Thread Safety
//
// Except for Heap, implementations are not thread-safe. Wrappers and arenas
// that are shared across goroutines need external synchronization.
package alloc
