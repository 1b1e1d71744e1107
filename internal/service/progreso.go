package service

import (
	"math"

	"github.com/Bjohan23/SIGES-sub000/internal/domain"
)

// Completion scoring is a pure function of the record's current fields. The
// field lists are fixed; clients cannot supply their own percentage.

// Porcentaje counts non-empty values against the combined required+optional
// field count and rounds to the nearest integer percentage.
func Porcentaje(required, optional []bool) int {
	total := len(required) + len(optional)
	if total == 0 {
		return 0
	}
	filled := 0
	for _, ok := range required {
		if ok {
			filled++
		}
	}
	for _, ok := range optional {
		if ok {
			filled++
		}
	}
	return int(math.Round(100 * float64(filled) / float64(total)))
}

// DeriveEstado recomputes estado on write: 100% is COMPLETA, anything else
// INCOMPLETA. Review states set through the estado endpoint survive until the
// next write changes the percentage bucket they were applied to.
func DeriveEstado(pct int, current string) string {
	switch current {
	case domain.EstadoEnRevision, domain.EstadoAprobada, domain.EstadoRechazada:
		return current
	}
	if pct == 100 {
		return domain.EstadoCompleta
	}
	return domain.EstadoIncompleta
}

func notEmpty(s string) bool { return s != "" }

func blockFilled(m domain.JSONMap) bool { return len(m) > 0 }

// FichaPorcentaje scores a ficha social: identity fields are required, the
// nested blocks and contact fields are optional.
func FichaPorcentaje(f *domain.FichaSocial) int {
	required := []bool{
		notEmpty(f.Nombres),
		notEmpty(f.Apellidos),
		notEmpty(f.DNI),
		f.FechaNacimiento != nil,
	}
	optional := []bool{
		notEmpty(f.Direccion),
		notEmpty(f.Telefono),
		blockFilled(f.ComposicionFamiliar),
		blockFilled(f.DatosEconomicos),
		blockFilled(f.Vivienda),
		blockFilled(f.Salud),
		blockFilled(f.DeclaracionJurada),
	}
	return Porcentaje(required, optional)
}

// EntrevistaPorcentaje scores an entrevista: subject identity plus classroom
// data required, the answer map optional.
func EntrevistaPorcentaje(e *domain.Entrevista) int {
	required := []bool{
		notEmpty(e.Nombres),
		notEmpty(e.Apellidos),
		notEmpty(e.Aula),
		notEmpty(e.Grado),
	}
	optional := []bool{
		blockFilled(e.Respuestas),
	}
	return Porcentaje(required, optional)
}
