package blogService

import (
	"fmt"
	"strings"
)

const promptTemplate = `Write a well-structured, engaging blog post for a developer audience.

Title: %s

Details: %s

Use a short introduction, a few sections with clear headings, practical examples where they help, and a brief conclusion. Respond with the blog post only.`

func buildPrompt(title, details string) string {
	return fmt.Sprintf(promptTemplate, strings.TrimSpace(title), strings.TrimSpace(details))
}
