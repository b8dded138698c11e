// Package remote persists entities against a hosted REST endpoint, mirroring
// the local adapter's operation contract.
//
// Requests go to {BASE_URL}/rest/v1/{table} with table one of users,
// partners, recommendations, sessions. Every request carries the apikey
// header pair and Content-Type: application/json; writes add the
// merge-duplicates upsert preference; reads filter tombstones with
// isDeleted=eq.false and order explicitly (id ascending, or createdAt
// descending for the most-recent-session lookup).
//
// Availability is a precondition: without endpoint and key configuration
// every call fails fast with ErrBackendUnavailable before touching the
// network. Non-2xx responses surface as *StoreError with status and body;
// this layer performs zero automatic retries and never falls back to the
// local store — retry policy belongs to the caller.
package remote
