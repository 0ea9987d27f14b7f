package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rahul370139/train-backend/api/http/handlers"
)

// Register wires all HTTP routes onto the given Fiber app.
func Register(
	app *fiber.App,
	health *handlers.HealthHandler,
	meta *handlers.MetaHandler,
	careerH *handlers.CareerHandler,
	roadmapH *handlers.RoadmapHandler,
	distillH *handlers.DistillHandler,
	lessonH *handlers.LessonHandler,
	userH *handlers.UserHandler,
	chatH *handlers.ChatHandler,
	dashboardH *handlers.DashboardHandler,
	identity fiber.Handler,
) {
	// Probes stay at the root for monitoring.
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")
	if identity != nil {
		api.Use(identity)
	}

	api.Get("/frameworks", meta.Frameworks)
	api.Get("/explanation-levels", meta.ExplanationLevels)

	api.Post("/distill", distillH.Distill)
	api.Get("/lessons/:lesson_id", distillH.Lesson)
	api.Post("/lessons/:lesson_id/complete", lessonH.Complete)

	smart := api.Group("/career/smart")
	smart.Get("/initial-suggestions", careerH.InitialSuggestions)
	smart.Post("/suggest-skills", careerH.SuggestSkills)
	smart.Post("/discover", careerH.Discover)

	rm := api.Group("/career/roadmap")
	rm.Post("/unified", roadmapH.Generate)
	rm.Post("/interview-prep", roadmapH.InterviewPrep)

	u := api.Group("/users/:user_id")
	u.Put("/role", userH.SetRole)
	u.Get("/role", userH.GetRole)
	u.Get("/progress", lessonH.Progress)
	u.Get("/completed-lessons", lessonH.CompletedLessons)
	u.Get("/lessons", distillH.Lessons)

	api.Post("/recommendations", lessonH.Recommendations)

	ch := api.Group("/chat")
	ch.Post("/", chatH.Send)
	ch.Post("/upload", chatH.Upload)
	ch.Get("/conversations/:user_id", chatH.Conversations)
	ch.Get("/conversation/:conversation_id", chatH.History)

	d := api.Group("/dashboard")
	d.Get("/progress/:user_id", dashboardH.Progress)
	d.Get("/achievements/:user_id", dashboardH.Achievements)
	d.Get("/:user_id", dashboardH.Overview)
}
