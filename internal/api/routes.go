package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUser)

	stories := api.Group("/stories")
	stories.Get("", handler.ListPublishedStories)
	stories.Get("/mine", handler.AuthRequired, handler.ListMyStories)
	stories.Post("", handler.AuthRequired, handler.CreateStory)
	stories.Get("/:publicID", handler.GetPublishedStory)
	stories.Put("/:publicID", handler.AuthRequired, handler.UpdateStory)
	stories.Delete("/:publicID", handler.AuthRequired, handler.DeleteStory)

	therapists := api.Group("/therapists")
	therapists.Get("", handler.ListApprovedTherapists)
	therapists.Get("/mine", handler.AuthRequired, handler.MyTherapistApplication)
	therapists.Post("/apply", handler.AuthRequired, handler.CreateTherapistApplication)
	therapists.Get("/:publicID", handler.GetApprovedTherapist)

	reports := api.Group("/reports")
	reports.Post("", handler.CreateReport)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/therapists", handler.AdminListTherapists)
	admin.Post("/therapists/:publicID/decision", handler.DecideTherapist)
	admin.Get("/stories", handler.AdminListStories)
	admin.Post("/stories/:publicID/status", handler.UpdateStoryStatus)
	admin.Get("/reports", handler.AdminListReports)
	admin.Post("/reports/:id/status", handler.UpdateReportStatus)
	admin.Get("/review-logs/:entityType/:entityID", handler.ListReviewLogs)
}
