package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP, middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/profile", h.getProfile)
		r.Put("/api/profile", h.saveProfile)
		r.Get("/api/roles/me", h.getMyRole)

		r.Get("/api/messages/static", h.getStaticMessage)
		r.Get("/api/messages/assistant", h.getStaticAssistantMessage)

		r.Get("/api/locales", h.getSupportedLocales)
		r.Get("/api/locales/current", h.getCurrentLocale)

		r.Post("/api/analysis/sentiment", h.analyzeSentiment)
		r.Post("/api/analysis/language", h.detectLanguage)
		r.Post("/api/text/sentence-case", h.sentenceCase)
		r.Post("/api/text/trim", h.trimText)

		r.Get("/api/conversation/entries", h.getConversationEntries)
		r.With(h.journalHashing).Post("/api/conversation/entries", h.saveConversationEntries)

		// admin routes
		r.Group(func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/api/users/{userID}/profile", h.getUserProfile)
			r.Put("/api/users/{userID}/role", h.assignRole)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
