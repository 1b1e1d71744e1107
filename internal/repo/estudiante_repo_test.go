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

func newMockRepo(t *testing.T) (*EstudianteRepo, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return NewEstudianteRepo(db), mock
}

func estudianteRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "codigo", "dni", "nombres", "apellidos", "fecha_nacimiento",
		"aula", "grado", "activo", "creado_por_id", "actualizado_por_id",
		"created_at", "updated_at",
	})
}

func TestFindActivoByDNI(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r, mock := newMockRepo(t)
		now := time.Now()
		mock.ExpectQuery(`SELECT \* FROM "estudiantes" WHERE activo = \$1 AND dni = \$2`).
			WillReturnRows(estudianteRows().
				AddRow("est-1", "EST-001", "12345678", "Ana", "Quispe", nil,
					"A", "4", true, "u1", nil, now, now))

		got, err := r.FindActivoByDNI(context.Background(), "12345678")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "est-1", got.ID)
		require.NotNil(t, got.DNI)
		assert.Equal(t, "12345678", *got.DNI)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent is nil without error", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectQuery(`SELECT \* FROM "estudiantes" WHERE activo = \$1 AND dni = \$2`).
			WillReturnRows(estudianteRows())

		got, err := r.FindActivoByDNI(context.Background(), "99999999")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSoftDelete(t *testing.T) {
	t.Run("flips activo", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`UPDATE "estudiantes" SET "activo"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(false, sqlmock.AnyArg(), "est-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := r.SoftDelete(context.Background(), "est-1")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent row reports false", func(t *testing.T) {
		r, mock := newMockRepo(t)
		mock.ExpectExec(`UPDATE "estudiantes" SET "activo"=\$1,"updated_at"=\$2 WHERE id = \$3`).
			WithArgs(false, sqlmock.AnyArg(), "nope").
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := r.SoftDelete(context.Background(), "nope")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEstudianteList(t *testing.T) {
	r, mock := newMockRepo(t)
	now := time.Now()

	// Count first, then the page, both under the same filter.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "estudiantes" WHERE activo = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT \* FROM "estudiantes" WHERE activo = \$1 ORDER BY created_at DESC`).
		WillReturnRows(estudianteRows().
			AddRow("est-2", "EST-002", "87654321", "Luis", "Mamani", nil,
				"B", "3", true, "u1", nil, now, now).
			AddRow("est-1", "EST-001", "12345678", "Ana", "Quispe", nil,
				"A", "4", true, "u1", nil, now, now))

	items, total, err := r.List(context.Background(), EstudianteFilter{}, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 2)
	assert.Equal(t, "est-2", items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
