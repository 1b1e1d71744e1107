package domain

import "time"

// AdminWildcard grants every permission when present in a permission set.
const AdminWildcard = "ADMIN"

type Usuario struct {
	ID           string     `gorm:"primaryKey;size:32" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:191;not null" json:"email"`
	PasswordHash string     `gorm:"size:100;not null" json:"-"`
	Nombres      string     `gorm:"size:100;not null" json:"nombres"`
	Apellidos    string     `gorm:"size:100;not null" json:"apellidos"`
	RolID        string     `gorm:"size:32;index;not null" json:"rolId"`
	Rol          *Rol       `gorm:"foreignKey:RolID" json:"rol,omitempty"`
	Activo       bool       `gorm:"not null;default:true" json:"activo"`
	UltimoAcceso *time.Time `json:"ultimoAcceso,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Usuario) TableName() string { return "usuarios" }

// Publico strips credentials for API responses.
func (u *Usuario) Publico() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"nombres":   u.Nombres,
		"apellidos": u.Apellidos,
		"rolId":     u.RolID,
		"activo":    u.Activo,
	}
}

type Rol struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Nombre      string    `gorm:"uniqueIndex;size:64;not null" json:"nombre"`
	Descripcion string    `gorm:"size:255" json:"descripcion"`
	Modulos     []*Modulo `gorm:"many2many:roles_modulos" json:"modulos,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Rol) TableName() string { return "roles" }

// Modulo is a grantable permission code (FICHAS_ESCRITURA, ESTUDIANTES_LECTURA...).
type Modulo struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Codigo      string    `gorm:"uniqueIndex;size:64;not null" json:"codigo"`
	Nombre      string    `gorm:"size:100;not null" json:"nombre"`
	Descripcion string    `gorm:"size:255" json:"descripcion"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Modulo) TableName() string { return "modulos" }
