package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	md "github.com/campusbrella/umbrella-service/pkg/middleware"

	"github.com/campusbrella/umbrella-service/internal/errs"
	"github.com/campusbrella/umbrella-service/internal/model"
	"github.com/campusbrella/umbrella-service/pkg/validate"
)

const (
	invalidRentalData     = "Invalid rental data"
	invalidAdvertiserData = "Invalid advertiser data"
	invalidCredentials    = "Invalid credentials"
)

type Handler struct {
	umbrellaSvc UmbrellaService
	log         *zap.Logger
}

func New(umbrellaSvc UmbrellaService, log *zap.Logger) *Handler {
	h := &Handler{
		umbrellaSvc: umbrellaSvc,
		log:         log,
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/rentals", h.CreateRental)
	api.POST("/advertisers", h.CreateAdvertiser)
	api.POST("/admin/login", h.Login)

	// The dashboard listings are gated server-side with the same seeded
	// credential the login endpoint checks.
	admin := api.Group("", h.adminBasicAuth())
	admin.GET("/rentals", h.ListRentals)
	admin.GET("/advertisers", h.ListAdvertisers)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) adminBasicAuth() echo.MiddlewareFunc {
	return middleware.BasicAuth(func(username, password string, c echo.Context) (bool, error) {
		err := h.umbrellaSvc.Login(c.Request().Context(), model.LoginRequest{
			Username: username,
			Password: password,
		})
		return err == nil, nil
	})
}

func (h *Handler) CreateRental(c echo.Context) error {
	var req model.CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Error: invalidRentalData})
	}
	if err := c.Validate(&req); err != nil {
		h.log.Debug("rental rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Error: invalidRentalData})
	}

	rental, err := h.umbrellaSvc.CreateRental(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rental)
}

func (h *Handler) ListRentals(c echo.Context) error {
	rentals, err := h.umbrellaSvc.ListRentals(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rentals)
}

func (h *Handler) CreateAdvertiser(c echo.Context) error {
	var req model.CreateAdvertiserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Error: invalidAdvertiserData})
	}
	if err := c.Validate(&req); err != nil {
		h.log.Debug("advertiser rejected", zap.Error(err))
		return c.JSON(http.StatusBadRequest, errs.ErrorResponse{Error: invalidAdvertiserData})
	}

	adv, err := h.umbrellaSvc.CreateAdvertiser(c.Request().Context(), req)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, adv)
}

func (h *Handler) ListAdvertisers(c echo.Context) error {
	advertisers, err := h.umbrellaSvc.ListAdvertisers(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, advertisers)
}

// Login is a stateless credential check: no token or cookie is issued, the caller
// tracks its own logged-in state.
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, errs.ErrorResponse{Error: invalidCredentials})
	}

	if err := h.umbrellaSvc.Login(c.Request().Context(), req); err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, errs.ErrorResponse{Error: invalidCredentials})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, model.LoginResponse{Success: true})
}
