package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jakerich1/DietApi/models"
)

func newGormWithMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormRepository_FindCreatedBetween(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.FoodEntry](db)

	start := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	id := uuid.NewString()

	rows := sqlmock.NewRows([]string{"id", "name", "protein", "calories", "created"}).
		AddRow(id, "Apple", "0.5", "95", start.Add(time.Hour))
	mock.ExpectQuery(`SELECT \* FROM "food_entries" WHERE created >= \$1 AND created <= \$2 ORDER BY created asc`).
		WithArgs(start, end).
		WillReturnRows(rows)

	got, err := repo.FindCreatedBetween(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.FoodEntry{ID: id, Name: "Apple", Protein: "0.5", Calories: "95", Created: start.Add(time.Hour)}, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindCreatedBetween_Error(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.WaterEntry](db)

	mock.ExpectQuery(`FROM "water_entries"`).WillReturnError(errors.New("conn reset"))

	_, err := repo.FindCreatedBetween(context.Background(), time.Now(), time.Now())
	assert.ErrorContains(t, err, "conn reset")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindByID(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.WaterEntry](db)
	id := uuid.NewString()
	created := time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "water_entries" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "created"}).AddRow(id, "250", created))

	got, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, &models.WaterEntry{ID: id, Amount: "250", Created: created}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.WaterEntry](db)

	mock.ExpectQuery(`FROM "water_entries" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "created"}))

	_, err := repo.FindByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_MalformedIDNeverQueries(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.FoodEntry](db)

	_, err := repo.FindByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrInvalidID)
	assert.ErrorIs(t, repo.DeleteByID(context.Background(), "not-a-uuid"), ErrInvalidID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_DeleteByID_MissingRowIsNotAnError(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.FoodEntry](db)

	mock.ExpectExec(`DELETE FROM "food_entries" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.DeleteByID(context.Background(), uuid.NewString()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRepository_Create_AssignsID(t *testing.T) {
	db, mock := newGormWithMock(t)
	repo := newGormRepository[models.FoodEntry](db)

	mock.ExpectExec(`INSERT INTO "food_entries"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := &models.FoodEntry{Name: "Apple", Protein: "0.5", Calories: "95", Created: time.Now()}
	require.NoError(t, repo.Create(context.Background(), e))

	_, err := uuid.Parse(e.ID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
