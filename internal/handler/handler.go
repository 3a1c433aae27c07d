package handler

import (
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-playground/locales/de"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	de_translations "github.com/go-playground/validator/v10/translations/de"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/zuacaldeira/kita-dienstplan/internal/config"
	"github.com/zuacaldeira/kita-dienstplan/internal/domain"
	"github.com/zuacaldeira/kita-dienstplan/internal/repository"
	"github.com/zuacaldeira/kita-dienstplan/internal/roster"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	entries     entryStore
	roster      *roster.Service
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	logger      *slog.Logger

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, logger *slog.Logger) (*Handler, error) {
	return newHandler(cfg, repo, roster.NewService(repo), mailCh, rdb, logger)
}

func newHandler(cfg *config.Config, repo *repository.Repository, rosterService *roster.Service, mailCh *amqp.Channel, rdb *redis.Client, logger *slog.Logger) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// field names in messages follow the JSON payload
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	de := de.New()
	uni := ut.New(de, de)
	trans, _ := uni.GetTranslator("de")
	if err := de_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	h := &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		roster:      rosterService,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		logger:      logger,

		Mux: chi.NewRouter(),
	}
	if repo != nil {
		h.entries = repo
	}
	return h, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))
	h.Mux.Use(httplog.RequestLogger(h.logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS.Concise(!h.config.IsProduction()),
	}))
	h.Mux.Use(middleware.CleanPath)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(middleware.Heartbeat("/ping"))

	admin := h.RequiredRole([]domain.Role{domain.RoleAdmin})

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/me", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/api", func(r chi.Router) {
			r.Route("/age-groups", func(r chi.Router) {
				r.Get("/", h.GetAllGroups)
				r.With(admin).Post("/", h.CreateGroup)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.group)
					r.Get("/", h.GetGroup)
					r.With(admin).Patch("/", h.UpdateGroup)
					r.With(admin).Delete("/", h.DeleteGroup)
				})
			})

			r.Route("/staff", func(r chi.Router) {
				r.Get("/", h.GetAllStaff)
				r.With(admin).Post("/", h.CreateStaff)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.staff)
					r.Get("/", h.GetStaff)
					r.With(admin).Patch("/", h.UpdateStaff)
					r.With(admin).Delete("/", h.DeleteStaff)
				})
			})

			r.Route("/weekly-schedules", func(r chi.Router) {
				r.Get("/", h.GetAllWeeklySchedules)
				r.With(admin).Post("/", h.CreateWeeklySchedule)
				r.Get("/week/{year}/{week}", h.GetWeeklyScheduleByWeek)
				r.Route("/{id}", func(r chi.Router) {
					r.Use(h.weeklySchedule)
					r.Get("/", h.GetWeeklySchedule)
					r.With(admin).Patch("/", h.UpdateWeeklySchedule)
					r.With(admin).Delete("/", h.DeleteWeeklySchedule)
					r.With(admin).Post("/notify", h.NotifyWeeklySchedule)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/week/{year}/{week}", h.GetScheduleByWeek)
				r.Get("/staff/{staffID}/week/{year}/{week}", h.GetStaffScheduleByWeek)
				r.Get("/date/{date}", h.GetScheduleByDate)
				r.Get("/statuses", h.GetStatuses)
				r.Get("/status/{status}", h.GetScheduleByStatus)
				r.Get("/on-duty", h.GetOnDuty)
				r.Get("/daily-totals/{year}/{week}", h.GetDailyTotals)
				r.Get("/weekly-totals/{year}/{week}", h.GetWeeklyStaffTotals)
				r.Get("/report/{year}/{week}", h.GetWeeklyReport)
				r.Route("/entries", func(r chi.Router) {
					r.With(admin).Post("/", h.CreateScheduleEntry)
					r.Route("/{id}", func(r chi.Router) {
						r.Use(h.scheduleEntry)
						r.Get("/", h.GetScheduleEntry)
						r.With(admin).Patch("/", h.UpdateScheduleEntry)
						r.With(admin).Delete("/", h.DeleteScheduleEntry)
					})
				})
			})
		})
	})
}
