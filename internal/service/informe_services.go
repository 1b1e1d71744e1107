package service

import (
	"strings"

	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/apperr"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/repo"
	"github.com/Bjohan23/SIGES-sub000/pkg/utils"
)

// Configured generic services for the narrative report types. Each one plugs
// its field rules and update copy into the shared CRUD behaviour.

func NewInformeVisitaService(db *gorm.DB) *CrudService[domain.InformeVisita] {
	s := NewCrudService(repo.NewRepo[domain.InformeVisita](db))
	s.NotFoundMsg = "informe de visita no encontrado"
	s.Validate = func(m *domain.InformeVisita) error {
		if strings.TrimSpace(m.Motivo) == "" {
			return apperr.Validation("motivo es requerido")
		}
		return nil
	}
	s.BeforeCreate = func(m *domain.InformeVisita, creadorID string) {
		m.ID = utils.NewID()
		m.CreadoPorID = creadorID
		m.ActualizadoPorID = nil
	}
	s.ApplyUpdate = func(dst, src *domain.InformeVisita, editorID string) {
		dst.EstudianteID = src.EstudianteID
		dst.Fecha = src.Fecha
		dst.Motivo = src.Motivo
		dst.Antecedentes = src.Antecedentes
		dst.Observaciones = src.Observaciones
		dst.Conclusiones = src.Conclusiones
		dst.ActualizadoPorID = &editorID
	}
	return s
}

func NewRegistroEntrevistaService(db *gorm.DB) *CrudService[domain.RegistroEntrevista] {
	s := NewCrudService(repo.NewRepo[domain.RegistroEntrevista](db))
	s.NotFoundMsg = "registro de entrevista no encontrado"
	s.Validate = func(m *domain.RegistroEntrevista) error {
		if strings.TrimSpace(m.Entrevistado) == "" {
			return apperr.Validation("entrevistado es requerido")
		}
		return nil
	}
	s.BeforeCreate = func(m *domain.RegistroEntrevista, creadorID string) {
		m.ID = utils.NewID()
		m.CreadoPorID = creadorID
		m.ActualizadoPorID = nil
	}
	s.ApplyUpdate = func(dst, src *domain.RegistroEntrevista, editorID string) {
		dst.EstudianteID = src.EstudianteID
		dst.Fecha = src.Fecha
		dst.Entrevistado = src.Entrevistado
		dst.Asunto = src.Asunto
		dst.Desarrollo = src.Desarrollo
		dst.Acuerdos = src.Acuerdos
		dst.ActualizadoPorID = &editorID
	}
	return s
}

func NewCronicaCasoService(db *gorm.DB) *CrudService[domain.CronicaCaso] {
	s := NewCrudService(repo.NewRepo[domain.CronicaCaso](db))
	s.NotFoundMsg = "crónica no encontrada"
	s.Validate = func(m *domain.CronicaCaso) error {
		if strings.TrimSpace(m.Titulo) == "" {
			return apperr.Validation("titulo es requerido")
		}
		return nil
	}
	s.BeforeCreate = func(m *domain.CronicaCaso, creadorID string) {
		m.ID = utils.NewID()
		m.CreadoPorID = creadorID
		m.ActualizadoPorID = nil
	}
	s.ApplyUpdate = func(dst, src *domain.CronicaCaso, editorID string) {
		dst.EstudianteID = src.EstudianteID
		dst.Fecha = src.Fecha
		dst.Titulo = src.Titulo
		dst.Narracion = src.Narracion
		dst.ActualizadoPorID = &editorID
	}
	return s
}

func NewInformeSituacionService(db *gorm.DB) *CrudService[domain.InformeSituacion] {
	s := NewCrudService(repo.NewRepo[domain.InformeSituacion](db))
	s.NotFoundMsg = "informe de situación no encontrado"
	s.Validate = func(m *domain.InformeSituacion) error {
		if strings.TrimSpace(m.Diagnostico) == "" {
			return apperr.Validation("diagnostico es requerido")
		}
		return nil
	}
	s.BeforeCreate = func(m *domain.InformeSituacion, creadorID string) {
		m.ID = utils.NewID()
		m.CreadoPorID = creadorID
		m.ActualizadoPorID = nil
	}
	s.ApplyUpdate = func(dst, src *domain.InformeSituacion, editorID string) {
		dst.EstudianteID = src.EstudianteID
		dst.Fecha = src.Fecha
		dst.SituacionFamiliar = src.SituacionFamiliar
		dst.SituacionEconomica = src.SituacionEconomica
		dst.Diagnostico = src.Diagnostico
		dst.Recomendaciones = src.Recomendaciones
		dst.ActualizadoPorID = &editorID
	}
	return s
}
