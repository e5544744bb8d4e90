// Package ports defines the interfaces between ScriptGuard's domain logic
// and the outside world: the whitelist contract consulted by the policy
// chain, the deny-list collaborator, approval persistence and interactive
// review. Implementations live in domain/policy, application and
// infrastructure packages.
package ports
