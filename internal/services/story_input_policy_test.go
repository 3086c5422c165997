package services

import (
	"errors"
	"testing"
)

func TestValidateStoryInputTrims(t *testing.T) {
	input := validStoryInput()
	input.Title = "  Back on my feet  "
	input.MedicalCondition = " Slipped disc "

	if err := ValidateStoryInput(&input); err != nil {
		t.Fatalf("ValidateStoryInput() unexpected error: %v", err)
	}
	if input.Title != "Back on my feet" || input.MedicalCondition != "Slipped disc" {
		t.Fatalf("expected trimmed fields, got %q / %q", input.Title, input.MedicalCondition)
	}
}

func TestValidateStoryInputRequiredFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*StoryInput)
		want   error
	}{
		{"title", func(input *StoryInput) { input.Title = " " }, ErrStoryTitleRequired},
		{"condition", func(input *StoryInput) { input.MedicalCondition = "" }, ErrStoryConditionRequired},
		{"category", func(input *StoryInput) { input.TreatmentCategory = "" }, ErrStoryCategoryRequired},
		{"process", func(input *StoryInput) { input.TreatmentProcess = "" }, ErrStoryProcessRequired},
		{"truthful", func(input *StoryInput) { input.ConsentTruthful = false }, ErrStoryConsentRequired},
		{"publish", func(input *StoryInput) { input.ConsentPublish = false }, ErrStoryConsentRequired},
	}

	for _, testCase := range cases {
		input := validStoryInput()
		testCase.mutate(&input)
		if err := ValidateStoryInput(&input); !errors.Is(err, testCase.want) {
			t.Fatalf("%s: expected %v, got %v", testCase.name, testCase.want, err)
		}
	}
}
