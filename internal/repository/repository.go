package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campusbrella/umbrella-service/internal/errs"
	"github.com/campusbrella/umbrella-service/internal/model"
)

type Repository interface {
	CreateRental(ctx context.Context, req model.CreateRentalRequest) (model.RentalRequest, error)
	ListRentals(ctx context.Context) ([]model.RentalRequest, error)
	CreateAdvertiser(ctx context.Context, req model.CreateAdvertiserRequest) (model.AdvertiserApplication, error)
	ListAdvertisers(ctx context.Context) ([]model.AdvertiserApplication, error)
	GetAdminByUsername(ctx context.Context, username string) (model.Admin, error)
}

// AdminSeed is the single credential pair loaded into the store at startup.
type AdminSeed struct {
	Username string
	Password string
}

// repository keeps every record in process memory. Records are append-only:
// nothing is ever updated or deleted, so readers only race with appends and a
// single RWMutex is enough.
type repository struct {
	mu          sync.RWMutex
	rentals     map[string]model.RentalRequest
	rentalOrder []string
	advertisers map[string]model.AdvertiserApplication
	advOrder    []string
	admins      []model.Admin
	log         *zap.Logger
}

func NewRepository(seed AdminSeed, log *zap.Logger) (*repository, error) {
	return &repository{
		rentals:     make(map[string]model.RentalRequest),
		advertisers: make(map[string]model.AdvertiserApplication),
		admins: []model.Admin{{
			ID:       uuid.NewString(),
			Username: seed.Username,
			Password: seed.Password,
		}},
		log: log.Named("repo"),
	}, nil
}

func (r *repository) CreateRental(_ context.Context, req model.CreateRentalRequest) (model.RentalRequest, error) {
	rental := model.RentalRequest{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		StudentID:  req.StudentID,
		Phone:      req.Phone,
		RentalDate: req.RentalDate,
		ReturnDate: req.ReturnDate,
		CreatedAt:  time.Now(),
	}

	r.mu.Lock()
	r.rentals[rental.ID] = rental
	r.rentalOrder = append(r.rentalOrder, rental.ID)
	r.mu.Unlock()

	r.log.Debug("CreateRental", zap.String("id", rental.ID))
	return rental, nil
}

func (r *repository) ListRentals(_ context.Context) ([]model.RentalRequest, error) {
	r.mu.RLock()
	items := make([]model.RentalRequest, 0, len(r.rentalOrder))
	for i := len(r.rentalOrder) - 1; i >= 0; i-- {
		items = append(items, r.rentals[r.rentalOrder[i]])
	}
	r.mu.RUnlock()

	// Snapshot is built newest-insertion-first, so the stable sort keeps that
	// order for records sharing a timestamp.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *repository) CreateAdvertiser(_ context.Context, req model.CreateAdvertiserRequest) (model.AdvertiserApplication, error) {
	adv := model.AdvertiserApplication{
		ID:             uuid.NewString(),
		CompanyName:    req.CompanyName,
		Representative: req.Representative,
		Phone:          req.Phone,
		Email:          req.Email,
		CreatedAt:      time.Now(),
	}

	r.mu.Lock()
	r.advertisers[adv.ID] = adv
	r.advOrder = append(r.advOrder, adv.ID)
	r.mu.Unlock()

	r.log.Debug("CreateAdvertiser", zap.String("id", adv.ID))
	return adv, nil
}

func (r *repository) ListAdvertisers(_ context.Context) ([]model.AdvertiserApplication, error) {
	r.mu.RLock()
	items := make([]model.AdvertiserApplication, 0, len(r.advOrder))
	for i := len(r.advOrder) - 1; i >= 0; i-- {
		items = append(items, r.advertisers[r.advOrder[i]])
	}
	r.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *repository) GetAdminByUsername(_ context.Context, username string) (model.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, admin := range r.admins {
		if admin.Username == username {
			return admin, nil
		}
	}
	return model.Admin{}, errs.ErrNotFound
}
