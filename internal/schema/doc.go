// Package schema is the single validation entry point for every entity the
// data layer persists.
//
// Adapters call Validate before any write side effect and the Parse helpers
// on every read, so malformed input is rejected before it reaches storage and
// corrupted stored records never propagate upward as garbage. Validation
// failures are reported as *ValidationError carrying the offending field
// paths; callers match with errors.As.
//
// Rules are expressed as validator/v10 struct tags on the models, plus custom
// validations for the closed enumerations (phase, experience), RFC 3339
// timestamps, and postal codes.
package schema
