package models

// Preferences groups the location and taste settings collected during
// onboarding. Likes and dislikes are ordered free-text tags.
type Preferences struct {
	Country  string   `json:"country" validate:"required"`
	City     string   `json:"city" validate:"required"`
	ZipCode  string   `json:"zipCode" validate:"required,zipcode"`
	Budget   string   `json:"budget" validate:"required"`
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}

// User is the single local account record. At most one User exists in a store
// at a time; upserts are full replacements.
type User struct {
	ID          string      `json:"id" validate:"required"`
	Name        string      `json:"name" validate:"required"`
	Age         Age         `json:"age" validate:"required"`
	Gender      string      `json:"gender" validate:"required"`
	Email       string      `json:"email,omitempty" validate:"omitempty,email"`
	Preferences Preferences `json:"preferences"`
	IsDeleted   bool        `json:"isDeleted"`
	DeletedAt   *int64      `json:"deletedAt"`
}

// Active reports whether the user has not been soft-deleted.
func (u *User) Active() bool {
	return !u.IsDeleted
}

// Normalize replaces absent tag lists with empty ones so that a record read
// back from storage always carries non-nil slices.
func (u *User) Normalize() {
	if u.Preferences.Likes == nil {
		u.Preferences.Likes = []string{}
	}
	if u.Preferences.Dislikes == nil {
		u.Preferences.Dislikes = []string{}
	}
}
