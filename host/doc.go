// Package host provides the runtime environment for executing sandboxed
// WASM scripts.
//
// It abstracts the underlying WASM engine (wazero), manages script
// lifecycle, and handles the low-level ABI interactions (memory
// allocation, data packing/unpacking). Host functions registered through
// hostfuncs, the access check included, are exposed to every script the
// executor loads.
package host
