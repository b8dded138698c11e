package models

// PartnerProfile is a dating partner the user plans dates for. Partners are
// merged by id; soft-deleted entries stay in storage as tombstones and are
// excluded from listings.
type PartnerProfile struct {
	ID                string            `json:"id" validate:"required"`
	Name              string            `json:"name" validate:"required"`
	Age               Age               `json:"age,omitempty" validate:"omitempty"`
	Description       string            `json:"description"`
	Likes             []string          `json:"likes"`
	SocialProfiles    string            `json:"socialProfiles,omitempty" validate:"omitempty,url"`
	RelationshipPhase RelationshipPhase `json:"relationshipPhase,omitempty" validate:"omitempty,phase"`
	IsDeleted         bool              `json:"isDeleted"`
	DeletedAt         *int64            `json:"deletedAt"`
}

// Active reports whether the partner has not been soft-deleted.
func (p *PartnerProfile) Active() bool {
	return !p.IsDeleted
}

// Normalize replaces an absent likes list with an empty one.
func (p *PartnerProfile) Normalize() {
	if p.Likes == nil {
		p.Likes = []string{}
	}
}
