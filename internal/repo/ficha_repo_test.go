package repo

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockFichaRepo(t *testing.T) (*FichaRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return NewFichaRepo(db), mock
}

func TestFichaListDateRange(t *testing.T) {
	r, mock := newMockFichaRepo(t)

	desde := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	// hasta parses to midnight of the end date; the query must still include
	// rows created later that same day, so the upper bound is an exclusive
	// comparison against the following midnight.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "fichas_sociales" WHERE created_at >= \$1 AND created_at < \$2`).
		WithArgs(desde, hasta.Add(24*time.Hour)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "fichas_sociales" WHERE created_at >= \$1 AND created_at < \$2 ORDER BY created_at DESC`).
		WithArgs(desde, hasta.Add(24*time.Hour), 20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	items, total, err := r.List(context.Background(), FichaFilter{Desde: &desde, Hasta: &hasta}, 0, 20)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
