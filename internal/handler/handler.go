package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/config"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/mailer"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/pdf"
	"github.com/sysu-ecnc-dev/district-timesheet/backend/internal/storage"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	translator ut.Translator
	renderer   *pdf.Renderer
	uploader   storage.Uploader
	mailer     *mailer.Mailer // 可以为 nil，表示不发回执邮件

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, uploader storage.Uploader, m *mailer.Mailer) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		translator: trans,
		renderer:   pdf.New(cfg.Render.LogoPath),
		uploader:   uploader,
		mailer:     m,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	// 表单页面和本服务不同源
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.config.Server.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	h.Mux.Route("/api", func(r chi.Router) {
		r.Post("/submit", h.SubmitTimesheet)
		r.Get("/healthz", h.Healthz)
	})
}
