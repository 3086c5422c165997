package services

import (
	"errors"
	"testing"

	"github.com/yuvalrn/hachlama/internal/models"
)

func TestComputeDisplayNameFullName(t *testing.T) {
	name, err := ComputeDisplayName(models.PublicationChoiceFullName, "  Dana Levi  ")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if name != "Dana Levi" {
		t.Fatalf("ComputeDisplayName() = %q, want %q", name, "Dana Levi")
	}
}

func TestComputeDisplayNameFirstNameOnly(t *testing.T) {
	name, err := ComputeDisplayName(models.PublicationChoiceFirstNameOnly, "Dana Levi")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if name != "Dana" {
		t.Fatalf("ComputeDisplayName() = %q, want %q", name, "Dana")
	}
}

func TestComputeDisplayNameFirstNameLastInitial(t *testing.T) {
	name, err := ComputeDisplayName(models.PublicationChoiceFirstNameLastInitial, "Dana Levi")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if name != "Dana L." {
		t.Fatalf("ComputeDisplayName() = %q, want %q", name, "Dana L.")
	}
}

func TestComputeDisplayNameSingleTokenKeepsFirstName(t *testing.T) {
	name, err := ComputeDisplayName(models.PublicationChoiceFirstNameLastInitial, "Dana")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if name != "Dana" {
		t.Fatalf("ComputeDisplayName() = %q, want %q", name, "Dana")
	}
}

func TestComputeDisplayNameAnonymousIgnoresName(t *testing.T) {
	name, err := ComputeDisplayName(models.PublicationChoiceAnonymous, "Dana Levi")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if name != AnonymousDisplayName {
		t.Fatalf("ComputeDisplayName() = %q, want %q", name, AnonymousDisplayName)
	}
}

func TestComputeDisplayNameInternalOnlyPlaceholder(t *testing.T) {
	name, err := ComputeDisplayName(models.PublicationChoiceInternalOnly, "")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if name != InternalOnlyDisplayName {
		t.Fatalf("ComputeDisplayName() = %q, want %q", name, InternalOnlyDisplayName)
	}
}

func TestComputeDisplayNameRequiresNameForNamedChoices(t *testing.T) {
	for _, choice := range []string{
		models.PublicationChoiceFullName,
		models.PublicationChoiceFirstNameOnly,
		models.PublicationChoiceFirstNameLastInitial,
	} {
		if _, err := ComputeDisplayName(choice, "   "); !errors.Is(err, ErrSubmitterNameRequired) {
			t.Fatalf("ComputeDisplayName(%s) expected ErrSubmitterNameRequired, got %v", choice, err)
		}
	}
}

func TestComputeDisplayNameUnknownChoice(t *testing.T) {
	if _, err := ComputeDisplayName("NICKNAME", "Dana"); !errors.Is(err, ErrUnknownPublicationChoice) {
		t.Fatalf("expected ErrUnknownPublicationChoice, got %v", err)
	}
}

func TestComputeDisplayNameIsIdempotent(t *testing.T) {
	first, err := ComputeDisplayName(models.PublicationChoiceFirstNameLastInitial, "Dana Levi")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	second, err := ComputeDisplayName(models.PublicationChoiceFirstNameLastInitial, "Dana Levi")
	if err != nil {
		t.Fatalf("ComputeDisplayName() unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected stable result, got %q then %q", first, second)
	}
}
