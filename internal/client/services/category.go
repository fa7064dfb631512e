package services

import (
	"context"

	"soukclient/internal/client/client"
	"soukclient/internal/client/models"
	"soukclient/internal/client/repositories/session"
	"soukclient/internal/logging"
)

// CategoryService fetches the catalog for the home screen. Results are
// never cached; every visit hits the API again.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	client   client.Client
	sessions session.Repository
	log      logging.Logger
}

func NewCategoryService(c client.Client, sessions session.Repository, log logging.Logger) CategoryService {
	return &categoryService{client: c, sessions: sessions, log: log}
}

// List attaches the stored token as a bearer credential when one can be
// read. A storage failure degrades to an unauthenticated request instead of
// blocking the screen (fail-open).
func (s *categoryService) List(ctx context.Context) ([]models.Category, error) {
	token, err := s.sessions.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "session read failed, proceeding without token", "err", err)
		token = ""
	}

	return s.client.Categories(ctx, token)
}
