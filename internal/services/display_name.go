package services

import (
	"errors"
	"strings"

	"github.com/yuvalrn/hachlama/internal/models"
)

// Placeholder display names are persisted as-is; they are data, not
// per-request translations.
const (
	AnonymousDisplayName    = "אנונימי"
	InternalOnlyDisplayName = "שם שמור במערכת"
)

var (
	ErrSubmitterNameRequired    = errors.New("submitter name required")
	ErrUnknownPublicationChoice = errors.New("unknown publication choice")
)

// ComputeDisplayName derives the publicly shown identity string from the
// submitter's publication choice and raw name. It is the only producer of
// display names; callers persist the result on every create or edit that
// touches the choice or the name.
func ComputeDisplayName(choice string, rawName string) (string, error) {
	switch choice {
	case models.PublicationChoiceFullName:
		name := strings.TrimSpace(rawName)
		if name == "" {
			return "", ErrSubmitterNameRequired
		}
		return name, nil

	case models.PublicationChoiceFirstNameOnly:
		tokens := strings.Fields(rawName)
		if len(tokens) == 0 {
			return "", ErrSubmitterNameRequired
		}
		return tokens[0], nil

	case models.PublicationChoiceFirstNameLastInitial:
		tokens := strings.Fields(rawName)
		if len(tokens) == 0 {
			return "", ErrSubmitterNameRequired
		}
		if len(tokens) == 1 {
			return tokens[0], nil
		}
		lastInitial := []rune(tokens[len(tokens)-1])[0]
		return tokens[0] + " " + string(lastInitial) + ".", nil

	case models.PublicationChoiceAnonymous:
		return AnonymousDisplayName, nil

	case models.PublicationChoiceInternalOnly:
		return InternalOnlyDisplayName, nil

	default:
		return "", ErrUnknownPublicationChoice
	}
}
