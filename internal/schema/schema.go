package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/datekeeper/internal/models"
)

var zipCodePattern = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z -]{2,9}$`)

// Normalizer is implemented by entities that default absent collections to
// empty ones before validation.
type Normalizer interface {
	Normalize()
}

// Validator validates entities against their schema. A single instance is
// shared by both adapters; it is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the json tag names and the custom validations
// registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if a, ok := field.Interface().(models.Age); ok {
			return a.String()
		}
		return nil
	}, models.Age{})

	// Enum and format validations. Registration only fails for empty tags.
	_ = v.RegisterValidation("phase", func(fl validator.FieldLevel) bool {
		return models.RelationshipPhase(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("experience", func(fl validator.FieldLevel) bool {
		return models.DateExperience(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("rfc3339", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(time.RFC3339, fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
		return zipCodePattern.MatchString(fl.Field().String())
	})

	return &Validator{v: v}
}

// Validate normalizes entity when it implements Normalizer and checks it
// against its schema. It returns *ValidationError on failure. Entity must be
// a pointer to a struct.
func (s *Validator) Validate(entity any) error {
	if n, ok := entity.(Normalizer); ok {
		n.Normalize()
	}
	return s.wrap(s.v.Struct(entity))
}

// ValidatePartners validates every partner in the list.
func (s *Validator) ValidatePartners(list []models.PartnerProfile) error {
	for i := range list {
		if err := s.Validate(&list[i]); err != nil {
			return indexed(err, i)
		}
	}
	return nil
}

// ValidateRecommendations validates every recommendation in the list.
func (s *Validator) ValidateRecommendations(list []models.Recommendation) error {
	for i := range list {
		if err := s.Validate(&list[i]); err != nil {
			return indexed(err, i)
		}
	}
	return nil
}

// ParseUser unmarshals and validates a stored User record.
func (s *Validator) ParseUser(data []byte) (*models.User, error) {
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("decoding user: %w", err)
	}
	if err := s.Validate(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ParsePartners unmarshals and validates a stored partner list.
func (s *Validator) ParsePartners(data []byte) ([]models.PartnerProfile, error) {
	var list []models.PartnerProfile
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding partners: %w", err)
	}
	if err := s.ValidatePartners(list); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseRecommendations unmarshals and validates a stored recommendation list.
func (s *Validator) ParseRecommendations(data []byte) ([]models.Recommendation, error) {
	var list []models.Recommendation
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("decoding recommendations: %w", err)
	}
	if err := s.ValidateRecommendations(list); err != nil {
		return nil, err
	}
	return list, nil
}

// ParseSession unmarshals and validates a stored Session record.
func (s *Validator) ParseSession(data []byte) (*models.Session, error) {
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	if err := s.Validate(&sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// wrap converts validator.ValidationErrors into *ValidationError with json
// field paths (the leading type name is stripped).
func (s *Validator) wrap(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.Index(path, "."); i >= 0 {
			path = path[i+1:]
		}
		fields = append(fields, path)
	}
	return &ValidationError{Fields: fields, err: err}
}

// indexed prefixes every field path of a *ValidationError with the list index.
func indexed(err error, i int) error {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	fields := make([]string, len(verr.Fields))
	for j, f := range verr.Fields {
		fields[j] = fmt.Sprintf("[%d].%s", i, f)
	}
	return &ValidationError{Fields: fields, err: verr.err}
}
