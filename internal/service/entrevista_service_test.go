package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
)

type fakeEntrevistaStore struct {
	rows map[string]*domain.Entrevista
}

func newFakeEntrevistaStore() *fakeEntrevistaStore {
	return &fakeEntrevistaStore{rows: map[string]*domain.Entrevista{}}
}

func (f *fakeEntrevistaStore) Create(_ context.Context, m *domain.Entrevista) error {
	cp := *m
	f.rows[m.ID] = &cp
	return nil
}

func (f *fakeEntrevistaStore) FindByID(_ context.Context, id string) (*domain.Entrevista, error) {
	m, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (f *fakeEntrevistaStore) Save(_ context.Context, m *domain.Entrevista) error {
	cp := *m
	f.rows[m.ID] = &cp
	return nil
}

func (f *fakeEntrevistaStore) List(_ context.Context, flt repo.EntrevistaFilter, offset, limit int) ([]domain.Entrevista, int64, error) {
	var out []domain.Entrevista
	for _, m := range f.rows {
		if flt.FichaSocialID != "" && m.FichaSocialID != flt.FichaSocialID {
			continue
		}
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEntrevistaStore) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func entrevistaFixture(t *testing.T) (*EntrevistaService, string) {
	t.Helper()
	fichas := newFakeFichaStore()
	fsvc := NewFichaService(fichas, nil)
	ficha, err := fsvc.Create(context.Background(), &domain.FichaSocial{Nombres: "Ana", Apellidos: "Quispe"}, "u1")
	require.NoError(t, err)
	return NewEntrevistaService(newFakeEntrevistaStore(), fichas), ficha.ID
}

func validEntrevista(fichaID string) *domain.Entrevista {
	return &domain.Entrevista{
		FichaSocialID: fichaID,
		Nombres:       "Luis",
		Apellidos:     "Mamani",
		Aula:          "B",
		Grado:         "3",
	}
}

func TestEntrevistaCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("derives percentage against its field set", func(t *testing.T) {
		svc, fichaID := entrevistaFixture(t)
		got, err := svc.Create(ctx, validEntrevista(fichaID), "u1")
		require.NoError(t, err)
		assert.Equal(t, 80, got.PorcentajeCompletado)
		assert.Equal(t, domain.EstadoIncompleta, got.Estado)
	})

	t.Run("full entrevista is completa", func(t *testing.T) {
		svc, fichaID := entrevistaFixture(t)
		in := validEntrevista(fichaID)
		in.Respuestas = domain.JSONMap{"p1": "sí"}
		got, err := svc.Create(ctx, in, "u1")
		require.NoError(t, err)
		assert.Equal(t, 100, got.PorcentajeCompletado)
		assert.Equal(t, domain.EstadoCompleta, got.Estado)
	})

	t.Run("requires fichaSocialId", func(t *testing.T) {
		svc, _ := entrevistaFixture(t)
		_, err := svc.Create(ctx, validEntrevista(""), "u1")
		require.Error(t, err)
		assert.Equal(t, 400, apperr.From(err).Status)
	})

	t.Run("rejects dangling ficha reference", func(t *testing.T) {
		svc, _ := entrevistaFixture(t)
		_, err := svc.Create(ctx, validEntrevista("no-such-ficha"), "u1")
		require.Error(t, err)
		assert.Equal(t, 400, apperr.From(err).Status)
	})
}

func TestEntrevistaUpdate(t *testing.T) {
	ctx := context.Background()
	svc, fichaID := entrevistaFixture(t)

	created, err := svc.Create(ctx, validEntrevista(fichaID), "u1")
	require.NoError(t, err)

	// Omitting fichaSocialId keeps the current link.
	in := validEntrevista("")
	in.Respuestas = domain.JSONMap{"p1": "no"}
	got, err := svc.Update(ctx, created.ID, in, "u2")
	require.NoError(t, err)
	assert.Equal(t, fichaID, got.FichaSocialID)
	assert.Equal(t, 100, got.PorcentajeCompletado)
	require.NotNil(t, got.ActualizadoPorID)
	assert.Equal(t, "u2", *got.ActualizadoPorID)
}

func TestEntrevistaDelete(t *testing.T) {
	ctx := context.Background()
	svc, fichaID := entrevistaFixture(t)

	created, err := svc.Create(ctx, validEntrevista(fichaID), "u1")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, created.ID))

	err = svc.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.From(err).Status)
}

func TestEntrevistaListByFicha(t *testing.T) {
	ctx := context.Background()
	svc, fichaID := entrevistaFixture(t)

	for range [2]int{} {
		_, err := svc.Create(ctx, validEntrevista(fichaID), "u1")
		require.NoError(t, err)
	}

	page, err := svc.ListByFicha(ctx, fichaID, PageQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)

	page, err = svc.ListByFicha(ctx, "otra-ficha", PageQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, page.Data, 0)
}
