package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/datekeeper/internal/models"
)

func validUser() *models.User {
	return &models.User{
		ID:     "user-1",
		Name:   "Sam",
		Age:    models.AgeFromString("29"),
		Gender: "Female",
		Preferences: models.Preferences{
			Country:  "USA",
			City:     "Austin",
			ZipCode:  "78701",
			Budget:   "medium",
			Likes:    []string{"wine"},
			Dislikes: []string{},
		},
	}
}

func TestValidate_User(t *testing.T) {
	s := New()

	require.NoError(t, s.Validate(validUser()))

	tests := []struct {
		name   string
		mutate func(u *models.User)
		field  string
	}{
		{"missing name", func(u *models.User) { u.Name = "" }, "name"},
		{"missing age", func(u *models.User) { u.Age = models.Age{} }, "age"},
		{"bad email", func(u *models.User) { u.Email = "not-an-email" }, "email"},
		{"bad zip", func(u *models.User) { u.Preferences.ZipCode = "!" }, "preferences.zipCode"},
		{"missing city", func(u *models.User) { u.Preferences.City = "" }, "preferences.city"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(u)
			err := s.Validate(u)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)
		})
	}
}

func TestValidate_NormalizesAbsentArrays(t *testing.T) {
	s := New()

	u := validUser()
	u.Preferences.Likes = nil
	u.Preferences.Dislikes = nil
	require.NoError(t, s.Validate(u))
	assert.NotNil(t, u.Preferences.Likes)
	assert.NotNil(t, u.Preferences.Dislikes)

	sess := &models.Session{ID: "s1", CreatedAt: 1, LastActiveAt: 1}
	require.NoError(t, s.Validate(sess))
	assert.NotNil(t, sess.DesiredExperiences)
}

func TestValidate_Partner(t *testing.T) {
	s := New()

	p := &models.PartnerProfile{ID: "p1", Name: "Alex"}
	require.NoError(t, s.Validate(p))

	p.SocialProfiles = "not a url"
	err := s.Validate(p)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "socialProfiles")

	p.SocialProfiles = "https://example.com/alex"
	p.RelationshipPhase = "courtship" // the abandoned enum variant
	err = s.Validate(p)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "relationshipPhase")

	p.RelationshipPhase = models.PhaseCourting
	require.NoError(t, s.Validate(p))
}

func TestValidate_Session(t *testing.T) {
	s := New()

	sess := &models.Session{
		ID:                 "s1",
		CreatedAt:          1700000000000,
		LastActiveAt:       1700000000000,
		DesiredExperiences: []models.DateExperience{models.ExperienceRomantic, "Cozy"},
	}
	err := s.Validate(sess)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Contains(t, verr.Fields[0], "desiredExperiences")

	sess.DesiredExperiences = []models.DateExperience{models.ExperienceRomantic}
	sess.DateStartISO = "tomorrow evening"
	err = s.Validate(sess)
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "dateStartISO")

	sess.DateStartISO = "2024-05-01T19:30:00-05:00"
	require.NoError(t, s.Validate(sess))
}

func TestValidateRecommendations_IndexedFieldPaths(t *testing.T) {
	s := New()

	list := []models.Recommendation{
		{ID: "r1", Title: "Dinner", Description: "Cozy", Location: "Downtown", EstimatedCost: "$$", BestTime: "7 PM"},
		{ID: "r2", Title: "Bar", Description: "Loud", Location: "Uptown", EstimatedCost: "$", BestTime: "9 PM", ReservationURL: "::bad::"},
	}
	err := s.ValidateRecommendations(list)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "[1].reservationUrl")
}

func TestParse_RoundTripLossless(t *testing.T) {
	s := New()

	u := validUser()
	u.Email = "sam@example.com"
	data, err := json.Marshal(u)
	require.NoError(t, err)

	got, err := s.ParseUser(data)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestParse_RejectsCorruptPayloads(t *testing.T) {
	s := New()

	_, err := s.ParseUser([]byte(`{"id":`))
	assert.Error(t, err)

	_, err = s.ParseUser([]byte(`{"id":"u1"}`))
	var verr *ValidationError
	assert.True(t, errors.As(err, &verr))

	_, err = s.ParsePartners([]byte(`[{"id":"p1"}]`))
	assert.True(t, errors.As(err, &verr))

	_, err = s.ParseSession([]byte(`not json`))
	assert.Error(t, err)
}
