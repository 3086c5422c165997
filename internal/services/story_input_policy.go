package services

import (
	"errors"
	"strings"
)

type StoryInput struct {
	PublicationChoice string
	SubmitterName     string
	SubmitterPhone    string
	Title             string
	MedicalCondition  string
	TreatmentCategory string
	TreatmentProcess  string
	Duration          string
	Outcome           string
	MessageToOthers   string
	ConsentTruthful   bool
	ConsentPublish    bool
}

var (
	ErrStoryTitleRequired     = errors.New("story title required")
	ErrStoryConditionRequired = errors.New("story medical condition required")
	ErrStoryCategoryRequired  = errors.New("story treatment category required")
	ErrStoryProcessRequired   = errors.New("story treatment process required")
	ErrStoryConsentRequired   = errors.New("story declarations required")
)

// ValidateStoryInput trims the input in place and checks required fields.
// Name requirements per publication choice are enforced by
// ComputeDisplayName, which every caller invokes right after this gate.
func ValidateStoryInput(input *StoryInput) error {
	input.SubmitterName = strings.TrimSpace(input.SubmitterName)
	input.SubmitterPhone = strings.TrimSpace(input.SubmitterPhone)
	input.Title = strings.TrimSpace(input.Title)
	input.MedicalCondition = strings.TrimSpace(input.MedicalCondition)
	input.TreatmentCategory = strings.TrimSpace(input.TreatmentCategory)
	input.TreatmentProcess = strings.TrimSpace(input.TreatmentProcess)
	input.Duration = strings.TrimSpace(input.Duration)
	input.Outcome = strings.TrimSpace(input.Outcome)
	input.MessageToOthers = strings.TrimSpace(input.MessageToOthers)

	if input.Title == "" {
		return ErrStoryTitleRequired
	}
	if input.MedicalCondition == "" {
		return ErrStoryConditionRequired
	}
	if input.TreatmentCategory == "" {
		return ErrStoryCategoryRequired
	}
	if input.TreatmentProcess == "" {
		return ErrStoryProcessRequired
	}
	if !input.ConsentTruthful || !input.ConsentPublish {
		return ErrStoryConsentRequired
	}
	return nil
}
