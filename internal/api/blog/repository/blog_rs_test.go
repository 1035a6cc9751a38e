package blogRepository

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/database/sqlite"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/utils"

	"github.com/go-playground/assert/v2"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestRepository returns a repository over an in-memory sqlite database
// with the blogs table created.
func newTestRepository(t *testing.T) Repository {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("migrating: %v", err)
	}

	return New(db, newTestLogger(), utils.New())
}

func createBlog(t *testing.T, repo Repository, blog entity.Blog) entity.Blog {
	t.Helper()

	client, err := repo.NewClient(true)
	if err != nil {
		t.Fatalf("NewClient(true): %v", err)
	}
	defer client.Rollback()

	created, err := client.Blogs.CreateBlog(context.Background(), blog)
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if err := client.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	return created
}

func listBlogs(t *testing.T, repo Repository) []entity.Blog {
	t.Helper()

	client, err := repo.NewClient(false)
	if err != nil {
		t.Fatalf("NewClient(false): %v", err)
	}

	list, err := client.Blogs.GetAllBlogs(context.Background())
	if err != nil {
		t.Fatalf("GetAllBlogs: %v", err)
	}
	return list
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	defer db.Close()

	for i := 0; i < 2; i++ {
		if err := Migrate(context.Background(), db); err != nil {
			t.Fatalf("Migrate run %d: %v", i+1, err)
		}
	}
}

func TestCreateBlog_AssignsIDAndPersists(t *testing.T) {
	repo := newTestRepository(t)
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	created := createBlog(t, repo, entity.Blog{
		Title:     "Go generics",
		Details:   "type parameters in practice",
		Content:   "Generics landed in Go 1.18.",
		CreatedAt: createdAt,
	})

	assert.NotEqual(t, "", created.ID)

	list := listBlogs(t, repo)
	assert.Equal(t, 1, len(list))
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Go generics", list[0].Title)
	assert.Equal(t, "type parameters in practice", list[0].Details)
	assert.Equal(t, "Generics landed in Go 1.18.", list[0].Content)
	assert.Equal(t, true, createdAt.Equal(list[0].CreatedAt))
}

func TestGetAllBlogs_EmptyIsNotNil(t *testing.T) {
	repo := newTestRepository(t)

	list := listBlogs(t, repo)

	if list == nil {
		t.Fatal("expected empty, non-nil slice")
	}
	assert.Equal(t, 0, len(list))
}

func TestGetAllBlogs_NewestFirst(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// inserted out of chronological order
	createBlog(t, repo, entity.Blog{Title: "middle", CreatedAt: base.Add(1 * time.Hour)})
	createBlog(t, repo, entity.Blog{Title: "oldest", CreatedAt: base})
	createBlog(t, repo, entity.Blog{Title: "newest", CreatedAt: base.Add(2 * time.Hour)})

	list := listBlogs(t, repo)

	assert.Equal(t, 3, len(list))
	assert.Equal(t, "newest", list[0].Title)
	assert.Equal(t, "middle", list[1].Title)
	assert.Equal(t, "oldest", list[2].Title)
}

func TestGetAllBlogs_SameTimestampOrderedByID(t *testing.T) {
	repo := newTestRepository(t)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first := createBlog(t, repo, entity.Blog{Title: "first", CreatedAt: at})
	second := createBlog(t, repo, entity.Blog{Title: "second", CreatedAt: at})

	list := listBlogs(t, repo)

	assert.Equal(t, 2, len(list))
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestGetAllBlogs_Idempotent(t *testing.T) {
	repo := newTestRepository(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	createBlog(t, repo, entity.Blog{Title: "a", Content: "x", CreatedAt: base})
	createBlog(t, repo, entity.Blog{Title: "b", Content: "y", CreatedAt: base.Add(time.Minute)})

	first := listBlogs(t, repo)
	second := listBlogs(t, repo)

	assert.Equal(t, first, second)
}

func TestNewClient_RollbackDiscardsInsert(t *testing.T) {
	repo := newTestRepository(t)

	client, err := repo.NewClient(true)
	if err != nil {
		t.Fatalf("NewClient(true): %v", err)
	}

	if _, err := client.Blogs.CreateBlog(context.Background(), entity.Blog{
		Title:     "discarded",
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if err := client.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	assert.Equal(t, 0, len(listBlogs(t, repo)))
}
