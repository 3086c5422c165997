package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/yuvalrn/hachlama/internal/services"
)

func (handler *Handler) CreateReport(c *fiber.Ctx) error {
	payload := reportPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	report, err := handler.reports.Submit(services.ReportInput{
		EntityType: payload.EntityType,
		EntityID:   payload.EntityID,
		Reason:     payload.Reason,
		Details:    payload.Details,
	})
	if err != nil {
		return handler.respondError(c, err)
	}

	return respondCreated(c, fiber.Map{
		"report_id": report.ID,
		"status":    report.Status,
	})
}
