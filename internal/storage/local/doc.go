// Package local persists entities in an on-device SQLite database as four
// named slots (user, partners, recs, session) holding JSON records.
//
// # Read policy
//
// A stored record that fails to decode or validate degrades to "absent": the
// adapter logs the corruption and returns nil or an empty list instead of
// propagating garbage upward. Local storage corruption must never brick the
// app.
//
// # Write policy
//
// Every write validates first (no partial writes on validation failure) and
// is immediately durable. List writes are whole-list read-merge-write cycles
// without a surrounding transaction; see the storage package doc for the
// concurrency contract.
//
// Key Types
//
//   - type SlotStore — low-level named-slot key-value layer
//   - type Adapter   — storage.Adapter implementation over SlotStore
package local
