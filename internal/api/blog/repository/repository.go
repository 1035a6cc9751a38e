package blogRepository

import (
	"context"

	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/internal/entity"
	"github.com/sahilkhan786000/AeroLead-AI-BlogGenerator/pkg/utils"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

type BlogStore interface {
	CreateBlog(ctx context.Context, blog entity.Blog) (entity.Blog, error)
	GetAllBlogs(ctx context.Context) ([]entity.Blog, error)
}

type Client struct {
	Blogs BlogStore

	Commit   func() error
	Rollback func() error
}

func New(db *sqlx.DB, log *logrus.Logger, utils utils.IUtils) Repository {
	return &repository{
		DB:    db,
		log:   log,
		utils: utils,
	}
}

type repository struct {
	DB    *sqlx.DB
	log   *logrus.Logger
	utils utils.IUtils
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Blogs:    &blogsRepository{q: sqlExecutor, log: r.log, utils: r.utils},
		Commit:   commitFunc,
		Rollback: rollbackFunc,
	}, nil
}

// Migrate creates the blogs table when it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range []string{queryCreateBlogsTable, queryCreateBlogsCreatedAtIndex} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

type blogsRepository struct {
	q     SQLExecutor
	log   *logrus.Logger
	utils utils.IUtils
}
