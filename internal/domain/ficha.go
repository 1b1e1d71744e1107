package domain

import "time"

// Estado values for fichas sociales and entrevistas. COMPLETA/INCOMPLETA are
// derived from the completion percentage; the review states are only set via
// the dedicated estado endpoint.
const (
	EstadoIncompleta = "INCOMPLETA"
	EstadoCompleta   = "COMPLETA"
	EstadoEnRevision = "EN_REVISION"
	EstadoAprobada   = "APROBADA"
	EstadoRechazada  = "RECHAZADA"
)

func EstadoValido(s string) bool {
	switch s {
	case EstadoIncompleta, EstadoCompleta, EstadoEnRevision, EstadoAprobada, EstadoRechazada:
		return true
	}
	return false
}

// FichaSocial is the social intake case record. Nested blocks are free-shape
// JSON columns; the flat identity fields participate in completion scoring.
type FichaSocial struct {
	ID              string     `gorm:"primaryKey;size:32" json:"id"`
	Nombres         string     `gorm:"size:100" json:"nombres"`
	Apellidos       string     `gorm:"size:100" json:"apellidos"`
	DNI             string     `gorm:"column:dni;size:8;index" json:"dni"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
	Direccion       string     `gorm:"size:255" json:"direccion"`
	Telefono        string     `gorm:"size:20" json:"telefono"`

	ComposicionFamiliar JSONMap `json:"composicionFamiliar,omitempty"`
	DatosEconomicos     JSONMap `json:"datosEconomicos,omitempty"`
	Vivienda            JSONMap `json:"vivienda,omitempty"`
	Salud               JSONMap `json:"salud,omitempty"`
	DeclaracionJurada   JSONMap `json:"declaracionJurada,omitempty"`

	PorcentajeCompletado int    `gorm:"not null;default:0" json:"porcentajeCompletado"`
	Estado               string `gorm:"size:20;not null;default:INCOMPLETA;index" json:"estado"`

	Entrevistas []Entrevista `gorm:"foreignKey:FichaSocialID;constraint:OnDelete:CASCADE" json:"entrevistas,omitempty"`

	CreadoPorID      string  `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string `gorm:"size:32" json:"actualizadoPorId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (FichaSocial) TableName() string { return "fichas_sociales" }
