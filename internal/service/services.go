package service

import (
	"errors"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/store"
)

var ErrNoStoragesProvided = errors.New("no storages provided")

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices composes the service layer: validation wraps the core user
// service, which talks to storages.UserDataService.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.UserDataService == nil {
		return nil, ErrNoStoragesProvided
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserDataService, logger),
	)

	return &Services{
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
