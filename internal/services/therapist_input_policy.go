package services

import (
	"errors"
	"strings"
)

type TherapistApplicationInput struct {
	FullName            string
	Profession          string
	City                string
	ContactEmail        string
	Phone               string
	Specialties         []string
	Languages           []string
	EducationText       string
	ApproachDescription string
	Credo               string
	ConsentJoin         bool
}

var (
	ErrTherapistFullNameRequired    = errors.New("therapist full name required")
	ErrTherapistProfessionRequired  = errors.New("therapist profession required")
	ErrTherapistCityRequired        = errors.New("therapist city required")
	ErrTherapistContactEmailInvalid = errors.New("therapist contact email invalid")
	ErrTherapistApproachRequired    = errors.New("therapist approach description required")
	ErrTherapistConsentRequired     = errors.New("therapist join consent required")
)

// ValidateTherapistApplication trims the input in place and checks required
// fields. Input arrives pre-shaped by the handler; this is the schema gate.
func ValidateTherapistApplication(input *TherapistApplicationInput) error {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Profession = strings.TrimSpace(input.Profession)
	input.City = strings.TrimSpace(input.City)
	input.Phone = strings.TrimSpace(input.Phone)
	input.EducationText = strings.TrimSpace(input.EducationText)
	input.ApproachDescription = strings.TrimSpace(input.ApproachDescription)
	input.Credo = strings.TrimSpace(input.Credo)
	input.Specialties = trimNonEmpty(input.Specialties)
	input.Languages = trimNonEmpty(input.Languages)

	if input.FullName == "" {
		return ErrTherapistFullNameRequired
	}
	if input.Profession == "" {
		return ErrTherapistProfessionRequired
	}
	if input.City == "" {
		return ErrTherapistCityRequired
	}
	input.ContactEmail = NormalizeAuthEmail(input.ContactEmail)
	if input.ContactEmail == "" {
		return ErrTherapistContactEmailInvalid
	}
	if input.ApproachDescription == "" {
		return ErrTherapistApproachRequired
	}
	if !input.ConsentJoin {
		return ErrTherapistConsentRequired
	}
	return nil
}

func trimNonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
