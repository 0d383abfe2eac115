package ports

import (
	"context"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
)

// LinkRepository defines storage operations for links
type LinkRepository interface {
	List(ctx context.Context) ([]domain.Link, error) // Newest first
	Create(ctx context.Context, link *domain.Link) error
	GetByID(ctx context.Context, id int64) (*domain.Link, error)
	Update(ctx context.Context, link *domain.Link) error // Missing rows are ignored
	Delete(ctx context.Context, id int64) error
	Ping(ctx context.Context) error
	Close() error
}

// LinkService defines the business logic operations
type LinkService interface {
	ListLinks(ctx context.Context) ([]domain.Link, error)
	CreateLink(ctx context.Context, title, url string) (*domain.Link, error)
	GetLink(ctx context.Context, id int64) (*domain.Link, error)
	UpdateLink(ctx context.Context, id int64, title, url string) error
	DeleteLink(ctx context.Context, id int64) error
	Ready(ctx context.Context) error
}
