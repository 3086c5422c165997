package api

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yuvalrn/hachlama/internal/models"
	"github.com/yuvalrn/hachlama/internal/services"
)

func sendCachedJSON(c *fiber.Ctx, payload []byte) error {
	c.Type("json", "utf-8")
	return c.Send(payload)
}

func (handler *Handler) ListPublishedStories(c *fiber.Ctx) error {
	condition := c.Query("condition")
	category := c.Query("category")
	cacheKey := services.VariantKey(services.ViewStories, listCacheVariant(map[string]string{
		"condition": condition,
		"category":  category,
	}))

	if payload, ok := handler.views.Get(cacheKey); ok {
		return sendCachedJSON(c, payload)
	}

	stories, err := handler.repos.Stories.ListPublished(condition, category)
	if err != nil {
		return handler.respondError(c, err)
	}

	payload, err := json.Marshal(struct {
		Success bool              `json:"success"`
		Stories []publicStoryView `json:"stories"`
	}{Success: true, Stories: buildPublicStoryViews(stories)})
	if err != nil {
		return handler.respondError(c, err)
	}

	handler.views.Set(cacheKey, payload)
	return sendCachedJSON(c, payload)
}

func (handler *Handler) GetPublishedStory(c *fiber.Ctx) error {
	publicID := c.Params("publicID")
	cacheKey := services.StoryDetailView(publicID)

	if payload, ok := handler.views.Get(cacheKey); ok {
		return sendCachedJSON(c, payload)
	}

	story, err := handler.repos.Stories.FindByPublicID(publicID)
	if err != nil || story.Status != models.StoryStatusPublished {
		return handler.respondErrorKey(c, fiber.StatusNotFound, "error.story_not_found")
	}

	payload, err := json.Marshal(struct {
		Success bool            `json:"success"`
		Story   publicStoryView `json:"story"`
	}{Success: true, Story: buildPublicStoryView(story)})
	if err != nil {
		return handler.respondError(c, err)
	}

	handler.views.Set(cacheKey, payload)
	return sendCachedJSON(c, payload)
}

func (handler *Handler) ListMyStories(c *fiber.Ctx) error {
	user := currentUser(c)
	stories, err := handler.repos.Stories.ListByAuthor(user.ID)
	if err != nil {
		return handler.respondError(c, err)
	}
	return respondSuccess(c, fiber.Map{"stories": buildOwnerStoryViews(stories)})
}

func (handler *Handler) CreateStory(c *fiber.Ctx) error {
	payload := storyPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	story, err := handler.stories.Submit(currentUser(c), payload.toInput())
	if err != nil {
		return handler.respondError(c, err)
	}

	return respondCreated(c, fiber.Map{"story": buildOwnerStoryView(story)})
}

func (handler *Handler) UpdateStory(c *fiber.Ctx) error {
	payload := storyPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	story, err := handler.stories.Update(currentUser(c), c.Params("publicID"), payload.toInput())
	if err != nil {
		return handler.respondStoryEditError(c, err)
	}

	return respondSuccess(c, fiber.Map{"story": buildOwnerStoryView(story)})
}

func (handler *Handler) DeleteStory(c *fiber.Ctx) error {
	if err := handler.stories.Delete(currentUser(c), c.Params("publicID")); err != nil {
		return handler.respondStoryEditError(c, err)
	}
	return respondSuccess(c, fiber.Map{})
}

// respondStoryEditError narrows the generic unauthorized message to the
// ownership wording used on story edit and delete.
func (handler *Handler) respondStoryEditError(c *fiber.Ctx, err error) error {
	if errors.Is(err, services.ErrUnauthorized) {
		return handler.respondErrorKey(c, fiber.StatusForbidden, "error.unauthorized_story_edit")
	}
	return handler.respondError(c, err)
}
