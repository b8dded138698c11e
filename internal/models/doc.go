// Package models defines the entities persisted by the datekeeper data layer:
// the single local User, PartnerProfile records, venue Recommendations, and
// the ephemeral planner Session.
//
// All timestamps (createdAt, lastActiveAt, deletedAt) are Unix milliseconds,
// matching the wire format of stored records. Soft deletion is expressed as
// the IsDeleted flag plus a DeletedAt stamp; entities expose Active() to make
// the lifecycle state explicit.
//
// Validation rules live in internal/schema; this package only carries the
// shapes, the fixed enumerations, and merge helpers.
package models
