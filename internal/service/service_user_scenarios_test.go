// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MKhiriev/campus-coffee/internal/config"
	"github.com/MKhiriev/campus-coffee/internal/logger"
	"github.com/MKhiriev/campus-coffee/internal/store"
	"github.com/MKhiriev/campus-coffee/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends returns a fresh, fully composed UserService per storage backend.
func backends(t *testing.T) map[string]func(t *testing.T) UserService {
	t.Helper()

	compose := func(t *testing.T, dsn string) UserService {
		storages, err := store.NewStorages(context.Background(), config.Storage{
			DB: config.DB{DSN: dsn, Migrate: true},
		}, logger.Nop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = storages.Close() })

		services, err := NewServices(storages, config.App{Version: "test"}, logger.Nop())
		require.NoError(t, err)
		return services.UserService
	}

	return map[string]func(t *testing.T) UserService{
		"memory": func(t *testing.T) UserService {
			return compose(t, "memory")
		},
		"sqlite": func(t *testing.T) UserService {
			return compose(t, "sqlite://"+filepath.Join(t.TempDir(), "users.db"))
		},
	}
}

func forEachBackend(t *testing.T, test func(t *testing.T, svc UserService)) {
	for name, newService := range backends(t) {
		t.Run(name, func(t *testing.T) {
			test(t, newService(t))
		})
	}
}

func alice() models.UserProfile {
	return models.UserProfile{
		LoginName:    "alice",
		EmailAddress: "alice@example.com",
		FirstName:    "Alice",
		LastName:     "A",
	}
}

func TestScenario_CreateAssignsIDAndTimestamps(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		created, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, "alice", created.LoginName)
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))

		fetched, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, alice(), fetched.UserProfile)
	})
}

func TestScenario_DuplicateCreateLeavesOneRecord(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		_, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		other := alice()
		other.FirstName = "Another"
		_, err = svc.Upsert(ctx, models.NewUser(other))
		assert.ErrorIs(t, err, ErrDuplication)

		users, err := svc.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "Alice", users[0].FirstName)
	})
}

func TestScenario_UpdateKeepsIdentityAndRefreshesUpdatedAt(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		created, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		renamed := alice()
		renamed.FirstName = "Alicia"
		updated, err := svc.Upsert(ctx, models.ExistingUser(created.ID, renamed))
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
		assert.Equal(t, "Alicia", updated.FirstName)
	})
}

func TestScenario_UpdateIsFullReplace(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		created, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		replacement := models.UserProfile{
			LoginName:    "alice.b",
			EmailAddress: "ab@example.org",
			FirstName:    "Alice",
			LastName:     "B",
		}
		_, err = svc.Upsert(ctx, models.ExistingUser(created.ID, replacement))
		require.NoError(t, err)

		fetched, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, replacement, fetched.UserProfile)

		_, err = svc.GetByLoginName(ctx, "alice")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScenario_UpdateErrors(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		a, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)
		bob := alice()
		bob.LoginName = "bob"
		_, err = svc.Upsert(ctx, models.NewUser(bob))
		require.NoError(t, err)

		_, err = svc.Upsert(ctx, models.ExistingUser(a.ID+100, alice()))
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Upsert(ctx, models.ExistingUser(a.ID, bob))
		assert.ErrorIs(t, err, ErrDuplication)

		unchanged, err := svc.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.UserProfile, unchanged.UserProfile)
	})
}

func TestScenario_DeleteThenGet(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		created, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, created.ID))

		_, err = svc.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
	})
}

func TestScenario_EmptyStore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		users, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)

		_, err = svc.GetByLoginName(ctx, "bob")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.GetByID(ctx, 12345)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestScenario_ClearEmptiesStore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		_, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		require.NoError(t, svc.Clear(ctx))

		users, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestScenario_ReadsAreIdempotent(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		created, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		first, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		second, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestScenario_LoginNameIsCaseSensitive(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		_, err := svc.Upsert(ctx, models.NewUser(alice()))
		require.NoError(t, err)

		upper := alice()
		upper.LoginName = "Alice"
		_, err = svc.Upsert(ctx, models.NewUser(upper))
		require.NoError(t, err)

		_, err = svc.GetByLoginName(ctx, "ALICE")
		assert.ErrorIs(t, err, ErrNotFound)

		users, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestScenario_ConcurrentCreatesWithSameLogin(t *testing.T) {
	forEachBackend(t, func(t *testing.T, svc UserService) {
		ctx := context.Background()

		const attempts = 8
		errs := make([]error, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, errs[i] = svc.Upsert(ctx, models.NewUser(alice()))
			}()
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			switch {
			case err == nil:
				succeeded++
			case !errors.Is(err, ErrDuplication):
				t.Errorf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, succeeded)

		users, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
	})
}

func TestNewServices_RequiresStorages(t *testing.T) {
	_, err := NewServices(nil, config.App{Version: "1"}, logger.Nop())
	assert.ErrorIs(t, err, ErrNoStoragesProvided)
}

func TestNewServices_RequiresVersion(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)

	_, err = NewServices(storages, config.App{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
