package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/campusbrella/umbrella-service/internal/errs"
	"github.com/campusbrella/umbrella-service/internal/model"
	"github.com/campusbrella/umbrella-service/internal/repository"
	"github.com/campusbrella/umbrella-service/pkg/auth"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	verifier auth.Verifier
}

func NewService(repo repository.Repository, verifier auth.Verifier, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		verifier: verifier,
	}
}

func (s *Service) CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.RentalRequest, error) {
	return s.repo.CreateRental(ctx, req)
}

func (s *Service) ListRentals(ctx context.Context) ([]model.RentalRequest, error) {
	return s.repo.ListRentals(ctx)
}

func (s *Service) CreateAdvertiser(ctx context.Context, req model.CreateAdvertiserRequest) (model.AdvertiserApplication, error) {
	return s.repo.CreateAdvertiser(ctx, req)
}

func (s *Service) ListAdvertisers(ctx context.Context) ([]model.AdvertiserApplication, error) {
	return s.repo.ListAdvertisers(ctx)
}

// Login checks the presented credential pair against the seeded admin record.
// Unknown usernames and wrong secrets both fold into ErrInvalidCredentials so the
// caller cannot tell which half failed.
func (s *Service) Login(ctx context.Context, req model.LoginRequest) error {
	admin, err := s.repo.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrInvalidCredentials
		}
		return errors.Wrap(err, "admin lookup")
	}
	if !s.verifier.Verify(admin.Password, req.Password) {
		return errs.ErrInvalidCredentials
	}
	return nil
}
