package blogRepository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	contextPkg "github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/context"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/redis"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

// The listing is cached under a versioned key. Every committed insert bumps
// the version, so a listing read that raced with a write can only ever be
// stored under a version nobody reads again.
const (
	listingVersionKey   = "blogs:listing:version"
	listingKeyPrefix    = "blogs:listing:v"
	invalidationTimeout = 2 * time.Second
)

type cachedBlog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// WithCache wraps repo with a read-through cache of GetAllBlogs.
func WithCache(repo Repository, cache redis.ICache, ttl time.Duration, log *logrus.Logger) Repository {
	return &cachedRepository{
		inner: repo,
		cache: cache,
		ttl:   ttl,
		log:   log,
	}
}

type cachedRepository struct {
	inner Repository
	cache redis.ICache
	ttl   time.Duration
	log   *logrus.Logger
}

func (r *cachedRepository) NewClient(tx bool) (Client, error) {
	client, err := r.inner.NewClient(tx)
	if err != nil {
		return Client{}, err
	}

	blogs := &cachedBlogsRepository{
		parent:          r,
		inner:           client.Blogs,
		deferInvalidate: tx,
	}

	commit := client.Commit
	return Client{
		Blogs: blogs,
		Commit: func() error {
			if err := commit(); err != nil {
				return err
			}
			if blogs.dirty {
				ctx, cancel := context.WithTimeout(context.Background(), invalidationTimeout)
				defer cancel()
				r.invalidate(ctx)
				blogs.dirty = false
			}
			return nil
		},
		Rollback: client.Rollback,
	}, nil
}

func (r *cachedRepository) invalidate(ctx context.Context) {
	if _, err := r.cache.Incr(ctx, listingVersionKey); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Warn("Failed to invalidate blog listing cache")
	}
}

func (r *cachedRepository) listingKey(ctx context.Context) (string, error) {
	raw, err := r.cache.Get(ctx, listingVersionKey)
	if errors.Is(err, redis.ErrCacheMiss) {
		return listingKeyPrefix + "0", nil
	}
	if err != nil {
		return "", err
	}

	version, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse listing version %q: %w", raw, err)
	}
	return listingKeyPrefix + strconv.FormatInt(version, 10), nil
}

type cachedBlogsRepository struct {
	parent          *cachedRepository
	inner           BlogStore
	deferInvalidate bool
	dirty           bool
}

func (r *cachedBlogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error) {
	created, err := r.inner.CreateBlog(ctx, blog)
	if err != nil {
		return entity.Blog{}, err
	}

	if r.deferInvalidate {
		r.dirty = true
	} else {
		r.parent.invalidate(ctx)
	}

	return created, nil
}

func (r *cachedBlogsRepository) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	log := r.parent.log.WithField("request_id", contextPkg.GetRequestID(ctx))

	key, err := r.parent.listingKey(ctx)
	if err != nil {
		log.WithField("error", err.Error()).Warn("Blog listing cache unavailable, reading from store")
		return r.inner.GetAllBlogs(ctx)
	}

	raw, err := r.parent.cache.Get(ctx, key)
	if err == nil {
		var cached []cachedBlog
		if err := jsoniter.Unmarshal(raw, &cached); err == nil {
			return fromCached(cached), nil
		}
		log.WithField("key", key).Warn("Discarding undecodable blog listing cache entry")
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		log.WithField("error", err.Error()).Warn("Blog listing cache read failed")
	}

	list, err := r.inner.GetAllBlogs(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := jsoniter.Marshal(toCached(list))
	if err == nil {
		err = r.parent.cache.Set(ctx, key, encoded, r.parent.ttl)
	}
	if err != nil {
		log.WithField("error", err.Error()).Warn("Failed to cache blog listing")
	}

	return list, nil
}

func toCached(list []entity.Blog) []cachedBlog {
	out := make([]cachedBlog, 0, len(list))
	for _, b := range list {
		out = append(out, cachedBlog{
			ID:        b.ID,
			Title:     b.Title,
			Details:   b.Details,
			Content:   b.Content,
			CreatedAt: b.CreatedAt,
		})
	}
	return out
}

func fromCached(list []cachedBlog) []entity.Blog {
	out := make([]entity.Blog, 0, len(list))
	for _, b := range list {
		out = append(out, entity.Blog{
			ID:        b.ID,
			Title:     b.Title,
			Details:   b.Details,
			Content:   b.Content,
			CreatedAt: b.CreatedAt.UTC(),
		})
	}
	return out
}
