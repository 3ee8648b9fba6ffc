// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/store"
	"github.com/MKhiriev/campus-coffee/models"
)

type userService struct {
	userDataService store.UserDataService

	logger *logger.Logger
}

// NewUserService returns the core UserService. Business rules (uniqueness of
// the login name, existence checks) are evaluated here; persistence and
// timestamps are left to userDataService.
func NewUserService(userDataService store.UserDataService, logger *logger.Logger) UserService {
	return &userService{
		userDataService: userDataService,
		logger:          logger,
	}
}

func (s *userService) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.userDataService.Clear(ctx); err != nil {
		log.Err(err).Str("func", "*userService.Clear").Msg("error clearing users")
		return fmt.Errorf("error clearing users: %w", err)
	}

	log.Warn().Str("func", "*userService.Clear").Msg("all users were removed")
	return nil
}

func (s *userService) GetAll(ctx context.Context) ([]models.User, error) {
	users, err := s.userDataService.GetAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.GetAll").Msg("error getting users")
		return nil, fmt.Errorf("error getting users: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userDataService.GetByID(ctx, id)
	if err != nil {
		return models.User{}, s.mapStoreError(ctx, "*userService.GetByID", err, userNotFoundByID(id), nil)
	}

	return user, nil
}

func (s *userService) GetByLoginName(ctx context.Context, loginName string) (models.User, error) {
	if loginName == "" {
		return models.User{}, fmt.Errorf("%w: empty login name", ErrInvalidDataProvided)
	}

	user, err := s.userDataService.GetByLoginName(ctx, loginName)
	if err != nil {
		return models.User{}, s.mapStoreError(ctx, "*userService.GetByLoginName", err, userNotFoundByLoginName(loginName), nil)
	}

	return user, nil
}

func (s *userService) Upsert(ctx context.Context, request models.UpsertRequest) (models.User, error) {
	if id, existing := request.ID(); existing {
		return s.update(ctx, id, request.Profile)
	}

	return s.create(ctx, request.Profile)
}

func (s *userService) create(ctx context.Context, profile models.UserProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.ensureLoginNameFree(ctx, profile.LoginName, 0); err != nil {
		return models.User{}, err
	}

	user, err := s.userDataService.Insert(ctx, profile)
	if err != nil {
		// a concurrent insert can still win the unique index
		return models.User{}, s.mapStoreError(ctx, "*userService.create", err, nil, loginNameTaken(profile.LoginName))
	}

	log.Info().Str("func", "*userService.create").Int64("id", user.ID).Msg("user created")
	return user, nil
}

func (s *userService) update(ctx context.Context, id int64, profile models.UserProfile) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := s.GetByID(ctx, id); err != nil {
		return models.User{}, err
	}

	if err := s.ensureLoginNameFree(ctx, profile.LoginName, id); err != nil {
		return models.User{}, err
	}

	user, err := s.userDataService.Update(ctx, id, profile)
	if err != nil {
		return models.User{}, s.mapStoreError(ctx, "*userService.update", err, userNotFoundByID(id), loginNameTaken(profile.LoginName))
	}

	log.Info().Str("func", "*userService.update").Int64("id", user.ID).Msg("user updated")
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.userDataService.Delete(ctx, id); err != nil {
		return s.mapStoreError(ctx, "*userService.Delete", err, userNotFoundByID(id), nil)
	}

	logger.FromContext(ctx).Info().Str("func", "*userService.Delete").Int64("id", id).Msg("user deleted")
	return nil
}

// ensureLoginNameFree fails with a DuplicationError when loginName belongs to
// a user other than ownerID. ownerID is 0 for new users.
func (s *userService) ensureLoginNameFree(ctx context.Context, loginName string, ownerID int64) error {
	holder, err := s.userDataService.GetByLoginName(ctx, loginName)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ensureLoginNameFree").Msg("error checking login name")
		return fmt.Errorf("error checking login name: %w", err)
	case holder.ID != ownerID:
		return loginNameTaken(loginName)
	}

	return nil
}

// mapStoreError translates persistence sentinels into the service taxonomy.
// notFound and duplication are returned for the matching store errors when
// non-nil; anything else is logged and wrapped.
func (s *userService) mapStoreError(ctx context.Context, funcName string, err error, notFound, duplication error) error {
	switch {
	case notFound != nil && errors.Is(err, store.ErrUserNotFound):
		return notFound
	case duplication != nil && errors.Is(err, store.ErrLoginAlreadyExists):
		return duplication
	}

	logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("unexpected storage error")
	return fmt.Errorf("unexpected storage error: %w", err)
}
