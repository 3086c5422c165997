package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	user, err := handler.auth.Signup(credentials.Email, credentials.Password, credentials.ConfirmPassword)
	if err != nil {
		return handler.respondError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.respondError(c, err)
	}

	return respondCreated(c, fiber.Map{
		"user_id": user.ID,
		"role":    user.Role,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return handler.respondErrorKey(c, fiber.StatusBadRequest, "error.invalid_input")
	}

	user, err := handler.auth.Login(credentials.Email, credentials.Password)
	if err != nil {
		return handler.respondError(c, err)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return handler.respondError(c, err)
	}

	return respondSuccess(c, fiber.Map{
		"user_id": user.ID,
		"role":    user.Role,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return respondSuccess(c, fiber.Map{})
}

func (handler *Handler) CurrentUser(c *fiber.Ctx) error {
	user := currentUser(c)
	return respondSuccess(c, fiber.Map{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	})
}
