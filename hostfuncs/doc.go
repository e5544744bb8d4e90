// Package hostfuncs provides the pure Go host function layer scripts call
// into: a named handler registry, JSON codec plumbing, and the access-check
// handler backed by the policy chain. Nothing here depends on a WASM
// runtime; the host package wires these handlers into wazero.
package hostfuncs
