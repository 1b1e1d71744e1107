package domain

import "time"

// Estudiante is soft-deleted via Activo: default queries filter inactive rows
// but FindByID still returns them. Codigo and DNI are unique among active rows
// only, enforced in the service layer; plain indexes keep the lookups fast
// while letting a soft-deleted row's codigo be reused. DNI is optional and
// stays NULL when absent.
type Estudiante struct {
	ID              string     `gorm:"primaryKey;size:32" json:"id"`
	Codigo          string     `gorm:"index;size:20;not null" json:"codigo"`
	DNI             *string    `gorm:"column:dni;index;size:8" json:"dni,omitempty"`
	Nombres         string     `gorm:"size:100;not null" json:"nombres"`
	Apellidos       string     `gorm:"size:100;not null" json:"apellidos"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
	Aula            string     `gorm:"size:20" json:"aula"`
	Grado           string     `gorm:"size:20" json:"grado"`
	Activo          bool       `gorm:"not null;default:true" json:"activo"`

	CreadoPorID      string  `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string `gorm:"size:32" json:"actualizadoPorId,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Estudiante) TableName() string { return "estudiantes" }
