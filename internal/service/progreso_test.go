package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

func TestPorcentaje(t *testing.T) {
	tests := []struct {
		name     string
		required []bool
		optional []bool
		want     int
	}{
		{"empty lists", nil, nil, 0},
		{"nothing filled", []bool{false, false}, []bool{false}, 0},
		{"all filled", []bool{true, true}, []bool{true}, 100},
		{"one of three rounds to 33", []bool{true, false}, []bool{false}, 33},
		{"two of three rounds to 67", []bool{true, true}, []bool{false}, 67},
		{"half", []bool{true, false}, nil, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Porcentaje(tt.required, tt.optional))
		})
	}
}

func TestDeriveEstado(t *testing.T) {
	tests := []struct {
		name    string
		pct     int
		current string
		want    string
	}{
		{"full is completa", 100, "", domain.EstadoCompleta},
		{"partial is incompleta", 60, "", domain.EstadoIncompleta},
		{"completa drops back when fields are cleared", 40, domain.EstadoCompleta, domain.EstadoIncompleta},
		{"en revision survives writes", 100, domain.EstadoEnRevision, domain.EstadoEnRevision},
		{"aprobada survives writes", 10, domain.EstadoAprobada, domain.EstadoAprobada},
		{"rechazada survives writes", 0, domain.EstadoRechazada, domain.EstadoRechazada},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveEstado(tt.pct, tt.current))
		})
	}
}

func TestFichaPorcentaje(t *testing.T) {
	nacimiento := time.Date(2012, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("empty ficha scores zero", func(t *testing.T) {
		assert.Equal(t, 0, FichaPorcentaje(&domain.FichaSocial{}))
	})

	t.Run("identity only scores 4 of 11", func(t *testing.T) {
		f := &domain.FichaSocial{
			Nombres:         "Ana",
			Apellidos:       "Quispe",
			DNI:             "12345678",
			FechaNacimiento: &nacimiento,
		}
		assert.Equal(t, 36, FichaPorcentaje(f))
	})

	t.Run("every field filled scores 100", func(t *testing.T) {
		f := &domain.FichaSocial{
			Nombres:             "Ana",
			Apellidos:           "Quispe",
			DNI:                 "12345678",
			FechaNacimiento:     &nacimiento,
			Direccion:           "Av. Los Olivos 123",
			Telefono:            "987654321",
			ComposicionFamiliar: domain.JSONMap{"miembros": 4},
			DatosEconomicos:     domain.JSONMap{"ingreso": 1200},
			Vivienda:            domain.JSONMap{"tipo": "alquilada"},
			Salud:               domain.JSONMap{"seguro": "SIS"},
			DeclaracionJurada:   domain.JSONMap{"firmada": true},
		}
		assert.Equal(t, 100, FichaPorcentaje(f))
	})

	t.Run("empty json blocks do not count", func(t *testing.T) {
		f := &domain.FichaSocial{
			Nombres:             "Ana",
			Apellidos:           "Quispe",
			ComposicionFamiliar: domain.JSONMap{},
		}
		assert.Equal(t, 18, FichaPorcentaje(f)) // 2 of 11
	})
}

func TestEntrevistaPorcentaje(t *testing.T) {
	t.Run("empty entrevista scores zero", func(t *testing.T) {
		assert.Equal(t, 0, EntrevistaPorcentaje(&domain.Entrevista{}))
	})

	t.Run("identity without respuestas scores 80", func(t *testing.T) {
		e := &domain.Entrevista{Nombres: "Luis", Apellidos: "Mamani", Aula: "B", Grado: "3"}
		assert.Equal(t, 80, EntrevistaPorcentaje(e))
	})

	t.Run("with respuestas scores 100", func(t *testing.T) {
		e := &domain.Entrevista{
			Nombres: "Luis", Apellidos: "Mamani", Aula: "B", Grado: "3",
			Respuestas: domain.JSONMap{"p1": "sí"},
		}
		assert.Equal(t, 100, EntrevistaPorcentaje(e))
	})
}
