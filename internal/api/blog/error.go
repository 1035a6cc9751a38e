package blogs

import (
	"net/http"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/response"
)

var (
	ErrInvalidBlogsPayload = response.NewError(http.StatusBadRequest, "Invalid input. 'blogs' must be an array.")
	ErrGenerateBlogs       = response.NewError(http.StatusInternalServerError, "Failed to generate blogs.")
	ErrFetchBlogs          = response.NewError(http.StatusInternalServerError, "Failed to fetch blogs.")
)

// Content stored when generation does not produce usable text.
const (
	FailedToGenerateContent = "Failed to generate blog."
	NoContentGenerated      = "No content generated."
)
