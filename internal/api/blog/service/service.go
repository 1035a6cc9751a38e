package blogService

import (
	"context"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog"
	blogsRepository "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog/repository"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	GenerateBlogs(ctx context.Context, items []blogs.GenerateBlogItem) ([]entity.Blog, error)
	GenerateBlog(ctx context.Context, item blogs.GenerateBlogItem) (entity.Blog, error)
	GetAllBlogs(ctx context.Context) ([]entity.Blog, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	inference inference.IInference
	now       func() time.Time
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	inference inference.IInference,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		inference: inference,
		now:       time.Now,
	}
}
