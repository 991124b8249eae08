package handler

import (
	"context"

	"github.com/campusbrella/umbrella-service/internal/model"
	"github.com/campusbrella/umbrella-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type UmbrellaService interface {
	CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.RentalRequest, error)
	ListRentals(ctx context.Context) ([]model.RentalRequest, error)
	CreateAdvertiser(ctx context.Context, req model.CreateAdvertiserRequest) (model.AdvertiserApplication, error)
	ListAdvertisers(ctx context.Context) ([]model.AdvertiserApplication, error)
	Login(ctx context.Context, req model.LoginRequest) error
}

var _ UmbrellaService = (*service.Service)(nil)
