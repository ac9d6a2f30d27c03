// Package kernel contains shared value objects used across the domain model:
// entity identifiers (UUID) and the resolved acting party (Actor with its Role).
//
// Actor is always passed explicitly into core operations. The core never
// resolves credentials itself; the HTTP adapter turns an authenticated request
// into an Actor before any use case runs.
package kernel
