package services

import (
	"context"

	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/core/domain"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/logging"
	"github.com/wadjakorntonsri/biblioteca-enlaces/pkg/ports"
)

type LinkService struct {
	repo   ports.LinkRepository
	logger *logging.Logger
}

func NewLinkService(repo ports.LinkRepository, logger *logging.Logger) *LinkService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LinkService{repo: repo, logger: logger}
}

func (s *LinkService) ListLinks(ctx context.Context) ([]domain.Link, error) {
	return s.repo.List(ctx)
}

// CreateLink stores title and url as given. Empty values are accepted.
func (s *LinkService) CreateLink(ctx context.Context, title, url string) (*domain.Link, error) {
	link := &domain.Link{
		Title: title,
		URL:   url,
	}

	err := s.repo.Create(ctx, link)
	s.logger.LogLinkOperation(ctx, "create", link.ID, err)
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *LinkService) GetLink(ctx context.Context, id int64) (*domain.Link, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateLink replaces title and url. Updating an id that does not exist is
// not an error.
func (s *LinkService) UpdateLink(ctx context.Context, id int64, title, url string) error {
	err := s.repo.Update(ctx, &domain.Link{ID: id, Title: title, URL: url})
	s.logger.LogLinkOperation(ctx, "update", id, err)
	return err
}

func (s *LinkService) DeleteLink(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	s.logger.LogLinkOperation(ctx, "delete", id, err)
	return err
}

// Ready reports whether the datastore answers.
func (s *LinkService) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
