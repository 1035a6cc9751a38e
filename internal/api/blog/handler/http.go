package blogHandler

import (
	blogsService "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog/service"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	srv.Post("/generate", h.GenerateBlogs)
	srv.Get("/blog", h.GetAllBlogs)
}
