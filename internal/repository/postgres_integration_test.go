//go:build integration

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"menu-cms-svc/internal/config"
	"menu-cms-svc/internal/database"
	"menu-cms-svc/internal/models"
	"menu-cms-svc/internal/repository"
)

// newPostgres starts a throwaway PostgreSQL container and migrates it
func newPostgres(t *testing.T) *database.Database {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("menu"),
		postgres.WithUsername("menu"),
		postgres.WithPassword("menu"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewDatabase(&config.DatabaseConfig{Driver: "postgres", URL: connStr})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestPostgres(t *testing.T) {
	db := newPostgres(t)
	menus := repository.NewMenuRepository(db.DB)
	categories := repository.NewCategoryRepository(db.DB)
	dishes := repository.NewDishRepository(db.DB)
	settings := repository.NewSettingsRepository(db.DB)
	dashboard := repository.NewDashboardRepository(db.DB)

	t.Run("duplicate slug is translated", func(t *testing.T) {
		require.NoError(t, menus.Create(&models.Menu{Slug: "dup", TitleRu: "a", TitleKz: "b", TitleEn: "c"}))
		err := menus.Create(&models.Menu{Slug: "dup", TitleRu: "a", TitleKz: "b", TitleEn: "c"})
		assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
	})

	t.Run("dangling parent is a storage error", func(t *testing.T) {
		err := categories.Create(&models.Category{MenuID: 999999, Slug: "orphan", NameRu: "a", NameKz: "b", NameEn: "c"})
		require.Error(t, err)
		var se *repository.StorageError
		assert.True(t, errors.As(err, &se))
	})

	t.Run("menu delete cascades", func(t *testing.T) {
		menu := &models.Menu{Slug: "main", TitleRu: "a", TitleKz: "b", TitleEn: "c", Image: models.StringPtr("/static/uploads/main.png")}
		require.NoError(t, menus.Create(menu))
		category := &models.Category{MenuID: menu.ID, Slug: "salads", NameRu: "a", NameKz: "b", NameEn: "c"}
		require.NoError(t, categories.Create(category))
		dish := &models.Dish{CategoryID: category.ID, Slug: "greek", TitleRu: "a", TitleKz: "b", TitleEn: "c", Price: 4590, Image: models.StringPtr("/static/uploads/greek.png")}
		require.NoError(t, dishes.Create(dish))

		paths, err := dashboard.ListImagePaths()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"/static/uploads/main.png", "/static/uploads/greek.png"}, paths)

		stats, err := dashboard.GetStatistics()
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Categories)
		assert.Equal(t, int64(1), stats.Dishes)

		require.NoError(t, menus.Delete(menu.ID))
		_, err = categories.GetByID(category.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = dishes.GetByID(dish.ID)
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.ErrorIs(t, menus.Delete(menu.ID), repository.ErrNotFound)
	})

	t.Run("settings row is created once", func(t *testing.T) {
		require.NoError(t, settings.CreateIfAbsent(models.NewDefaultSettings()))
		require.NoError(t, settings.CreateIfAbsent(models.NewDefaultSettings()))

		var count int64
		require.NoError(t, db.DB.Model(&models.Settings{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
