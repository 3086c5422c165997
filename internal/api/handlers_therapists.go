package api

import (
	"encoding/json"
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/yuvalrn/hachlama/internal/models"
	"github.com/yuvalrn/hachlama/internal/services"
	"gorm.io/gorm"
)

// listCacheVariant builds the cache key suffix from the recognized filter
// params only, so unrecognized query junk cannot grow the cache.
func listCacheVariant(params map[string]string) string {
	values := url.Values{}
	for name, value := range params {
		if value != "" {
			values.Set(name, value)
		}
	}
	return values.Encode()
}

func (handler *Handler) ListApprovedTherapists(c *fiber.Ctx) error {
	profession := c.Query("profession")
	city := c.Query("city")
	cacheKey := services.VariantKey(services.ViewTherapists, listCacheVariant(map[string]string{
		"profession": profession,
		"city":       city,
	}))

	if payload, ok := handler.views.Get(cacheKey); ok {
		return sendCachedJSON(c, payload)
	}

	therapists, err := handler.repos.Therapists.ListApproved(profession, city)
	if err != nil {
		return handler.respondError(c, err)
	}

	payload, err := json.Marshal(struct {
		Success    bool                  `json:"success"`
		Therapists []publicTherapistView `json:"therapists"`
	}{Success: true, Therapists: buildPublicTherapistViews(therapists)})
	if err != nil {
		return handler.respondError(c, err)
	}

	handler.views.Set(cacheKey, payload)
	return sendCachedJSON(c, payload)
}

func (handler *Handler) GetApprovedTherapist(c *fiber.Ctx) error {
	publicID := c.Params("publicID")
	cacheKey := services.TherapistDetailView(publicID)

	if payload, ok := handler.views.Get(cacheKey); ok {
		return sendCachedJSON(c, payload)
	}

	therapist, err := handler.repos.Therapists.FindByPublicID(publicID)
	if err != nil || therapist.Status != models.TherapistStatusApproved {
		return handler.respondErrorKey(c, fiber.StatusNotFound, "error.therapist_not_found")
	}

	payload, err := json.Marshal(struct {
		Success   bool                `json:"success"`
		Therapist publicTherapistView `json:"therapist"`
	}{Success: true, Therapist: buildPublicTherapistView(therapist)})
	if err != nil {
		return handler.respondError(c, err)
	}

	handler.views.Set(cacheKey, payload)
	return sendCachedJSON(c, payload)
}

func (handler *Handler) MyTherapistApplication(c *fiber.Ctx) error {
	user := currentUser(c)

	therapist, err := handler.repos.Therapists.FindLatestByUserID(user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return handler.respondErrorKey(c, fiber.StatusNotFound, "error.therapist_not_found")
		}
		return handler.respondError(c, err)
	}

	return respondSuccess(c, fiber.Map{"therapist": buildOwnerTherapistView(therapist)})
}

func (handler *Handler) CreateTherapistApplication(c *fiber.Ctx) error {
	payload := therapistPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	therapist, err := handler.therapists.SubmitApplication(currentUser(c), payload.toInput())
	if err != nil {
		return handler.respondError(c, err)
	}

	return respondCreated(c, fiber.Map{
		"therapist_id": therapist.PublicID,
		"status":       therapist.Status,
	})
}
