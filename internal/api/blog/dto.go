package blogs

import (
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
)

type GenerateBlogItem struct {
	Title   string `json:"title"`
	Details string `json:"details"`
}

type GenerateBlogsRequest struct {
	Blogs []GenerateBlogItem `json:"blogs" validate:"required"`
}

type BlogResponse struct {
	ID        string    `json:"_id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewBlogResponse(blog entity.Blog) BlogResponse {
	return BlogResponse{
		ID:        blog.ID,
		Title:     blog.Title,
		Details:   blog.Details,
		Content:   blog.Content,
		CreatedAt: blog.CreatedAt,
	}
}

func NewBlogListResponse(list []entity.Blog) []BlogResponse {
	resp := make([]BlogResponse, 0, len(list))
	for _, blog := range list {
		resp = append(resp, NewBlogResponse(blog))
	}
	return resp
}
