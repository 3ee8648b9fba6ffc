// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/models"
)

// memoryUserRepository is an in-process [UserDataService]. A single RWMutex
// guards both the rows and the login-name index, so the uniqueness check and
// the write that depends on it are atomic.
type memoryUserRepository struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	byLogin map[string]int64
	nextID  int64
	last    time.Time
	now     func() time.Time
	logger  *logger.Logger
}

// NewMemoryUserRepository constructs an empty in-memory [UserDataService].
func NewMemoryUserRepository(logger *logger.Logger) UserDataService {
	return newMemoryUserRepository(logger, time.Now)
}

func newMemoryUserRepository(logger *logger.Logger, now func() time.Time) *memoryUserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:   make(map[int64]models.User),
		byLogin: make(map[string]int64),
		nextID:  1,
		now:     now,
		logger:  logger,
	}
}

// tick returns the next timestamp. Consecutive calls never return the same
// instant, even if the clock stalls or goes backwards. Caller holds mu.
func (r *memoryUserRepository) tick() time.Time {
	t := nextTimestamp(r.now().UTC().Truncate(time.Microsecond), r.last)
	r.last = t
	return t
}

func (r *memoryUserRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.users)
	clear(r.byLogin)
	logger.FromContext(ctx).Debug().Str("func", "*memoryUserRepository.Clear").Msg("all users removed")

	return nil
}

func (r *memoryUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	slices.SortFunc(users, func(a, b models.User) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return users, nil
}

func (r *memoryUserRepository) GetByID(ctx context.Context, id int64) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *memoryUserRepository) GetByLoginName(ctx context.Context, loginName string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byLogin[loginName]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return r.users[id], nil
}

func (r *memoryUserRepository) Insert(ctx context.Context, profile models.UserProfile) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byLogin[profile.LoginName]; taken {
		return models.User{}, ErrLoginAlreadyExists
	}

	now := r.tick()
	user := models.User{
		ID:          r.nextID,
		UserProfile: profile,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.nextID++

	r.users[user.ID] = user
	r.byLogin[profile.LoginName] = user.ID

	return user, nil
}

func (r *memoryUserRepository) Update(ctx context.Context, id int64, profile models.UserProfile) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	if holder, taken := r.byLogin[profile.LoginName]; taken && holder != id {
		return models.User{}, ErrLoginAlreadyExists
	}

	updated := current
	updated.UserProfile = profile
	updated.UpdatedAt = r.tick()

	delete(r.byLogin, current.LoginName)
	r.byLogin[profile.LoginName] = id
	r.users[id] = updated

	return updated, nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrUserNotFound
	}

	delete(r.users, id)
	delete(r.byLogin, user.LoginName)

	return nil
}
