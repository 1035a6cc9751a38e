package blogRepository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/redis"

	"github.com/go-playground/assert/v2"
)

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
	sets int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	v, ok := c.data[key]
	if !ok {
		return nil, redis.ErrCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.sets++
	c.data[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return c.err
}

func (c *fakeCache) Incr(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	n, _ := strconv.ParseInt(string(c.data[key]), 10, 64)
	n++
	c.data[key] = []byte(strconv.FormatInt(n, 10))
	return n, nil
}

func (c *fakeCache) Close() error { return nil }

// countingRepository wraps a Repository and counts listing reads that reach it.
type countingRepository struct {
	inner Repository
	reads int
}

func (r *countingRepository) NewClient(tx bool) (Client, error) {
	client, err := r.inner.NewClient(tx)
	if err != nil {
		return Client{}, err
	}
	client.Blogs = &countingStore{BlogStore: client.Blogs, parent: r}
	return client, nil
}

type countingStore struct {
	BlogStore
	parent *countingRepository
}

func (s *countingStore) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	s.parent.reads++
	return s.BlogStore.GetAllBlogs(ctx)
}

func newCachedTestRepository(t *testing.T, cache redis.ICache) (Repository, *countingRepository) {
	t.Helper()
	counting := &countingRepository{inner: newTestRepository(t)}
	return WithCache(counting, cache, time.Minute, newTestLogger()), counting
}

func TestCachedRepository_ServesRepeatReadsFromCache(t *testing.T) {
	cache := newFakeCache()
	repo, counting := newCachedTestRepository(t, cache)

	createBlog(t, repo, entity.Blog{Title: "a", Content: "x", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	first := listBlogs(t, repo)
	second := listBlogs(t, repo)

	assert.Equal(t, 1, counting.reads)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestCachedRepository_CommitInvalidatesListing(t *testing.T) {
	cache := newFakeCache()
	repo, counting := newCachedTestRepository(t, cache)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	createBlog(t, repo, entity.Blog{Title: "old", CreatedAt: base})
	assert.Equal(t, 1, len(listBlogs(t, repo)))

	createBlog(t, repo, entity.Blog{Title: "new", CreatedAt: base.Add(time.Hour)})
	list := listBlogs(t, repo)

	assert.Equal(t, 2, counting.reads)
	assert.Equal(t, 2, len(list))
	assert.Equal(t, "new", list[0].Title)
}

func TestCachedRepository_RollbackKeepsListing(t *testing.T) {
	cache := newFakeCache()
	repo, counting := newCachedTestRepository(t, cache)

	listBlogs(t, repo)

	client, err := repo.NewClient(true)
	if err != nil {
		t.Fatalf("NewClient(true): %v", err)
	}
	if _, err := client.Blogs.CreateBlog(context.Background(), entity.Blog{Title: "discarded", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if err := client.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}

	list := listBlogs(t, repo)
	assert.Equal(t, 0, len(list))
	assert.Equal(t, 1, counting.reads)
}

func TestCachedRepository_CacheErrorFallsThrough(t *testing.T) {
	cache := newFakeCache()
	cache.err = errors.New("connection refused")
	repo, counting := newCachedTestRepository(t, cache)

	createBlog(t, repo, entity.Blog{Title: "a", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})

	first := listBlogs(t, repo)
	second := listBlogs(t, repo)

	assert.Equal(t, 2, counting.reads)
	assert.Equal(t, 1, len(first))
	assert.Equal(t, first, second)
}

func TestCachedRepository_UndecodableEntryIsReplaced(t *testing.T) {
	cache := newFakeCache()
	cache.data[listingKeyPrefix+"0"] = []byte("not json")
	repo, counting := newCachedTestRepository(t, cache)

	list := listBlogs(t, repo)

	assert.Equal(t, 0, len(list))
	assert.Equal(t, 1, counting.reads)
	assert.Equal(t, "[]", string(cache.data[listingKeyPrefix+"0"]))
}
