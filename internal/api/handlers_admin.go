package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yuvalrn/hachlama/internal/models"
)

func (handler *Handler) AdminListTherapists(c *fiber.Ctx) error {
	therapists, err := handler.repos.Therapists.ListByStatus(c.Query("status"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{"therapists": buildAdminTherapistViews(therapists)})
}

func (handler *Handler) DecideTherapist(c *fiber.Ctx) error {
	payload := statusPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	if err := handler.therapists.Decide(currentUser(c), c.Params("publicID"), payload.Status, payload.Notes); err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{})
}

func (handler *Handler) AdminListStories(c *fiber.Ctx) error {
	stories, err := handler.repos.Stories.ListByStatus(c.Query("status"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{"stories": buildAdminStoryViews(stories)})
}

func (handler *Handler) UpdateStoryStatus(c *fiber.Ctx) error {
	payload := statusPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	if err := handler.stories.UpdateStatus(currentUser(c), c.Params("publicID"), payload.Status, payload.Notes); err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{})
}

func (handler *Handler) AdminListReports(c *fiber.Ctx) error {
	reports, err := handler.repos.Reports.ListByStatus(c.Query("status"))
	if err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{"reports": buildReportViews(reports)})
}

func (handler *Handler) UpdateReportStatus(c *fiber.Ctx) error {
	payload := statusPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	reportID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	if err := handler.reports.UpdateStatus(currentUser(c), uint(reportID), payload.Status); err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{})
}

func (handler *Handler) ListReviewLogs(c *fiber.Ctx) error {
	entityType := strings.ToUpper(strings.TrimSpace(c.Params("entityType")))
	if entityType != models.ReviewEntityStory && entityType != models.ReviewEntityTherapist {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	entityID, err := strconv.ParseUint(c.Params("entityID"), 10, 64)
	if err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	entries, err := handler.repos.ReviewLogs.ListForEntity(entityType, uint(entityID))
	if err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{"review_logs": buildReviewLogViews(entries)})
}
