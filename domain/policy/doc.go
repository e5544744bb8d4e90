// Package policy contains the access-control policies consulted when a
// sandboxed script reaches for the host object graph: the ordered chain,
// the pattern-based static whitelist and deny list, and the mode-driven
// permissive arbiter that runs last.
package policy
