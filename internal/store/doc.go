// Package store provides SQLite-backed durable storage for config-store
// entries.
//
// The store owns the flat mapping name → (value, alternate) held in a single
// table and exposes the operations the CLI dispatches to: exists, get, set,
// toggle, delete, list and drop.
//
// # Lookup semantics
//
// The data table carries no uniqueness constraint on name. Lookups take the
// first matching row in storage scan order as canonical; documented
// operations never create duplicates because set always checks for an
// existing row first (inside a transaction).
//
// # Error taxonomy
//
//   - *NoEntryError: the operation's target is absent. Returned only by
//     operations that semantically require existence (Get, Toggle, and Set
//     with changeOnly). Recoverable by the caller.
//   - Everything else is a storage failure, wrapped with %w so the
//     underlying sqlite diagnostic survives.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//
// Cross-process serialization is delegated entirely to SQLite's own locking;
// the store performs no retries and holds one connection for the process
// lifetime.
package store
