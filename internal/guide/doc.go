// Package guide talks to the hosted AI date-guide collaborator and carries
// the deterministic pick-explanation heuristics.
//
// The collaborator is a chat-style text-completion endpoint: the client POSTs
// a system turn plus user turns and receives a JSON object with a single
// completion string. When venue recommendations are generated, the completion
// is expected to contain a JSON array matching the Recommendation shape,
// possibly wrapped in prose; the outermost bracketed array is extracted
// before decoding. A completion that cannot be shaped into recommendations is
// ErrMalformedResponse — a "try again" condition for the caller, never
// retried here.
package guide
