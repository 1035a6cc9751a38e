package blogRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	contextPkg "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID        sql.NullString `db:"id"`
	Title     sql.NullString `db:"title"`
	Details   sql.NullString `db:"details"`
	Content   sql.NullString `db:"content"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if blog.ID == "" {
		id, err := r.utils.NewULIDFromTimestamp(blog.CreatedAt)
		if err != nil {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to generate ULID")
			return entity.Blog{}, err
		}
		blog.ID = id
	}

	argsKV := map[string]interface{}{
		"id":         blog.ID,
		"title":      blog.Title,
		"details":    blog.Details,
		"content":    blog.Content,
		"created_at": blog.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return entity.Blog{}, err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return entity.Blog{}, err
	}

	return blog, nil
}

func (r *blogsRepository) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB

	if err := r.q.SelectContext(ctx, &blogsList, r.q.Rebind(queryGetAllBlogs)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs execution err")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blogDB := range blogsList {
		result = append(result, r.makeBlog(blogDB))
	}

	return result, nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:        blog.ID.String,
		Title:     blog.Title.String,
		Details:   blog.Details.String,
		Content:   blog.Content.String,
		CreatedAt: blog.CreatedAt.UTC(),
	}
}
