// Package entities provides core domain entities for ScriptGuard.
// These are general-purpose value types used across all policy operations.
// Host-specific types like script sources belong in consuming applications.
package entities
