package blogService

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	contextPkg "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/context"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/inference"

	"github.com/sirupsen/logrus"
)

// GenerateBlogs handles items one after another. A failed generation still
// yields a stored record; only a storage failure stops the batch.
func (s *blogsService) GenerateBlogs(ctx context.Context, items []blogs.GenerateBlogItem) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"count":      len(items),
	}).Info("Generating blogs")

	result := make([]entity.Blog, 0, len(items))
	for i, item := range items {
		blog, err := s.GenerateBlog(ctx, item)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"index":      i,
				"error":      err.Error(),
			}).Error("Aborting blog generation batch")
			return nil, err
		}
		result = append(result, blog)
	}

	return result, nil
}

func (s *blogsService) GenerateBlog(ctx context.Context, item blogs.GenerateBlogItem) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	content := s.generateContent(ctx, item)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Blog{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.CreateBlog(ctx, entity.Blog{
		Title:     item.Title,
		Details:   item.Details,
		Content:   content,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"title":      item.Title,
			"error":      err.Error(),
		}).Error("Failed to store blog")
		return entity.Blog{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return entity.Blog{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"blog_id":    blog.ID,
	}).Debug("Blog stored")

	return blog, nil
}

// generateContent never fails: provider errors turn into the failure text.
func (s *blogsService) generateContent(ctx context.Context, item blogs.GenerateBlogItem) string {
	content, err := s.inference.ChatCompletion(ctx, buildPrompt(item.Title, item.Details))
	switch {
	case errors.Is(err, inference.ErrNoContent):
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"title":      item.Title,
		}).Warn("Model returned no content")
		return blogs.NoContentGenerated
	case err != nil:
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"title":      item.Title,
			"error":      err.Error(),
		}).Error("Blog generation failed")
		return blogs.FailedToGenerateContent
	case strings.TrimSpace(content) == "":
		return blogs.NoContentGenerated
	}
	return content
}

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	return list, nil
}
