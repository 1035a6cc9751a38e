package blogHandler

import (
	"fmt"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/api/blog"
	contextPkg "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/context"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/handlerUtil"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/log"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

func (h *BlogsHandler) GenerateBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c := contextPkg.FromFiberCtx(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing generate blogs request")

	var req blogs.GenerateBlogsRequest
	if err := jsoniter.Unmarshal(ctx.Body(), &req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrInvalidBlogsPayload)
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path(), blogs.ErrInvalidBlogsPayload)
	}

	result, err := h.blogsService.GenerateBlogs(c, req.Blogs)
	if err != nil {
		return errHandler.Handle(ctx, requestID, fmt.Errorf("%w: %w", blogs.ErrGenerateBlogs, err), ctx.Path(), "generate_blogs")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(result))
}

func (h *BlogsHandler) GetAllBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c := contextPkg.FromFiberCtx(ctx)

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all blogs request")

	result, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, fmt.Errorf("%w: %w", blogs.ErrFetchBlogs, err), ctx.Path(), "get_all_blogs")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, blogs.NewBlogListResponse(result))
}
