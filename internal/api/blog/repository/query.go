package blogRepository

const (
	queryCreateBlogsTable = `
		CREATE TABLE IF NOT EXISTS blogs (
			id         VARCHAR(26) PRIMARY KEY,
			title      TEXT NOT NULL,
			details    TEXT NOT NULL,
			content    TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`

	queryCreateBlogsCreatedAtIndex = `
		CREATE INDEX IF NOT EXISTS idx_blogs_created_at ON blogs (created_at DESC)
	`

	queryCreateBlog = `
		INSERT INTO blogs (
			id,
			title,
			details,
			content,
			created_at
		) VALUES (
			:id,
			:title,
			:details,
			:content,
			:created_at
		)
	`

	queryGetAllBlogs = `
		SELECT
			id,
			title,
			details,
			content,
			created_at
		FROM blogs
		ORDER BY created_at DESC, id DESC
	`
)
