package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/yuvalrn/hachlama/internal/services"
)

func respondSuccess(c *fiber.Ctx, data fiber.Map) error {
	payload := fiber.Map{"success": true}
	for key, value := range data {
		payload[key] = value
	}
	return c.JSON(payload)
}

func respondCreated(c *fiber.Ctx, data fiber.Map) error {
	payload := fiber.Map{"success": true}
	for key, value := range data {
		payload[key] = value
	}
	return c.Status(fiber.StatusCreated).JSON(payload)
}

// respondError converts a service error into the discriminated
// {"success":false,"error":...} envelope with a localized message. Unknown
// errors are logged server-side and answered with a generic message.
func (handler *Handler) respondError(c *fiber.Ctx, err error) error {
	status, key := classifyError(err)
	if key == "" {
		log.Printf("unexpected error on %s: %v", c.Path(), err)
		status, key = fiber.StatusInternalServerError, "error.unexpected"
	}
	return handler.respondErrorKey(c, status, key)
}

func (handler *Handler) respondErrorKey(c *fiber.Ctx, status int, key string) error {
	message := handler.i18n.Translate(currentLanguage(c), key)
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return fiber.StatusForbidden, "error.unauthorized"
	case errors.Is(err, services.ErrStoryNotFound):
		return fiber.StatusNotFound, "error.story_not_found"
	case errors.Is(err, services.ErrTherapistNotFound):
		return fiber.StatusNotFound, "error.therapist_not_found"
	case errors.Is(err, services.ErrReportNotFound):
		return fiber.StatusNotFound, "error.report_not_found"
	case errors.Is(err, services.ErrAlreadyDecided):
		return fiber.StatusConflict, "error.already_decided"
	case errors.Is(err, services.ErrInvalidTransition):
		return fiber.StatusConflict, "error.invalid_transition"
	case errors.Is(err, services.ErrActiveApplicationExists):
		return fiber.StatusConflict, "error.active_application_exists"
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return fiber.StatusConflict, "error.email_already_registered"
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "error.invalid_credentials"
	case errors.Is(err, services.ErrAuthEmailInvalid):
		return fiber.StatusBadRequest, "error.email_invalid"
	case errors.Is(err, services.ErrAuthPasswordTooShort):
		return fiber.StatusBadRequest, "error.password_too_short"
	case errors.Is(err, services.ErrAuthPasswordMismatch):
		return fiber.StatusBadRequest, "error.password_mismatch"
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return fiber.StatusBadRequest, "error.invalid_input"
	case errors.Is(err, services.ErrSubmitterNameRequired):
		return fiber.StatusBadRequest, "error.submitter_name_required"
	case errors.Is(err, services.ErrUnknownPublicationChoice):
		return fiber.StatusBadRequest, "error.unknown_publication_choice"
	case errors.Is(err, services.ErrStoryTitleRequired):
		return fiber.StatusBadRequest, "error.story_title_required"
	case errors.Is(err, services.ErrStoryConditionRequired):
		return fiber.StatusBadRequest, "error.story_condition_required"
	case errors.Is(err, services.ErrStoryCategoryRequired):
		return fiber.StatusBadRequest, "error.story_category_required"
	case errors.Is(err, services.ErrStoryProcessRequired):
		return fiber.StatusBadRequest, "error.story_process_required"
	case errors.Is(err, services.ErrStoryConsentRequired):
		return fiber.StatusBadRequest, "error.story_consent_required"
	case errors.Is(err, services.ErrTherapistFullNameRequired):
		return fiber.StatusBadRequest, "error.therapist_full_name_required"
	case errors.Is(err, services.ErrTherapistProfessionRequired):
		return fiber.StatusBadRequest, "error.therapist_profession_required"
	case errors.Is(err, services.ErrTherapistCityRequired):
		return fiber.StatusBadRequest, "error.therapist_city_required"
	case errors.Is(err, services.ErrTherapistContactEmailInvalid):
		return fiber.StatusBadRequest, "error.therapist_contact_email_invalid"
	case errors.Is(err, services.ErrTherapistApproachRequired):
		return fiber.StatusBadRequest, "error.therapist_approach_required"
	case errors.Is(err, services.ErrTherapistConsentRequired):
		return fiber.StatusBadRequest, "error.therapist_consent_required"
	case errors.Is(err, services.ErrReportEntityTypeInvalid):
		return fiber.StatusBadRequest, "error.report_entity_type_invalid"
	case errors.Is(err, services.ErrReportEntityRequired):
		return fiber.StatusBadRequest, "error.report_entity_required"
	case errors.Is(err, services.ErrReportReasonRequired):
		return fiber.StatusBadRequest, "error.report_reason_required"
	case errors.Is(err, services.ErrUnknownStoryStatus),
		errors.Is(err, services.ErrUnknownTherapistStatus),
		errors.Is(err, services.ErrUnknownReportStatus):
		return fiber.StatusBadRequest, "error.unknown_status"
	}
	return 0, ""
}
