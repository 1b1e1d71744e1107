package domain

import "time"

// Narrative report types: free-text sections plus audit references, no derived
// state. They share CRUD behaviour and are served by the generic mount.

type InformeVisita struct {
	ID            string     `gorm:"primaryKey;size:32" json:"id"`
	EstudianteID  *string    `gorm:"size:32;index" json:"estudianteId,omitempty"`
	Fecha         *time.Time `json:"fecha,omitempty"`
	Motivo        string     `gorm:"size:255" json:"motivo"`
	Antecedentes  string     `gorm:"type:text" json:"antecedentes"`
	Observaciones string     `gorm:"type:text" json:"observaciones"`
	Conclusiones  string     `gorm:"type:text" json:"conclusiones"`

	CreadoPorID      string    `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string   `gorm:"size:32" json:"actualizadoPorId,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (InformeVisita) TableName() string { return "informes_visita" }

type RegistroEntrevista struct {
	ID           string     `gorm:"primaryKey;size:32" json:"id"`
	EstudianteID *string    `gorm:"size:32;index" json:"estudianteId,omitempty"`
	Fecha        *time.Time `json:"fecha,omitempty"`
	Entrevistado string     `gorm:"size:100" json:"entrevistado"`
	Asunto       string     `gorm:"size:255" json:"asunto"`
	Desarrollo   string     `gorm:"type:text" json:"desarrollo"`
	Acuerdos     string     `gorm:"type:text" json:"acuerdos"`

	CreadoPorID      string    `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string   `gorm:"size:32" json:"actualizadoPorId,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (RegistroEntrevista) TableName() string { return "registros_entrevista" }

type CronicaCaso struct {
	ID           string     `gorm:"primaryKey;size:32" json:"id"`
	EstudianteID *string    `gorm:"size:32;index" json:"estudianteId,omitempty"`
	Fecha        *time.Time `json:"fecha,omitempty"`
	Titulo       string     `gorm:"size:255" json:"titulo"`
	Narracion    string     `gorm:"type:text" json:"narracion"`

	CreadoPorID      string    `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string   `gorm:"size:32" json:"actualizadoPorId,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (CronicaCaso) TableName() string { return "cronicas_caso" }

type InformeSituacion struct {
	ID                 string     `gorm:"primaryKey;size:32" json:"id"`
	EstudianteID       *string    `gorm:"size:32;index" json:"estudianteId,omitempty"`
	Fecha              *time.Time `json:"fecha,omitempty"`
	SituacionFamiliar  string     `gorm:"type:text" json:"situacionFamiliar"`
	SituacionEconomica string     `gorm:"type:text" json:"situacionEconomica"`
	Diagnostico        string     `gorm:"type:text" json:"diagnostico"`
	Recomendaciones    string     `gorm:"type:text" json:"recomendaciones"`

	CreadoPorID      string    `gorm:"size:32;index" json:"creadoPorId"`
	ActualizadoPorID *string   `gorm:"size:32" json:"actualizadoPorId,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (InformeSituacion) TableName() string { return "informes_situacion" }
