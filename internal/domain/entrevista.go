package domain

import "time"

// Entrevista is an applied interview linked to a ficha social and optionally
// to a student. Respuestas holds the free-form answer map.
type Entrevista struct {
	ID            string  `gorm:"primaryKey;size:32" json:"id"`
	FichaSocialID string  `gorm:"size:32;index;not null" json:"fichaSocialId"`
	EstudianteID  *string `gorm:"size:32;index" json:"estudianteId,omitempty"`
	Nombres       string  `gorm:"size:100" json:"nombres"`
	Apellidos     string  `gorm:"size:100" json:"apellidos"`
	Aula          string  `gorm:"size:20" json:"aula"`
	Grado         string  `gorm:"size:20" json:"grado"`

	Respuestas JSONMap `json:"respuestas,omitempty"`

	PorcentajeCompletado int    `gorm:"not null;default:0" json:"porcentajeCompletado"`
	Estado               string `gorm:"size:20;not null;default:INCOMPLETA;index" json:"estado"`

	CreadoPorID      string  `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string `gorm:"size:32" json:"actualizadoPorId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Entrevista) TableName() string { return "entrevistas" }
