package models

import "time"

type Franquicia struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre string `gorm:"size:100;not null" json:"nombre"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Franquicia) TableName() string { return "franquicias" }

type Sede struct {
	ID           string  `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre       string  `gorm:"size:100;not null" json:"nombre"`
	FranquiciaID *string `gorm:"type:uuid;index" json:"franquicia_id"`
	Direccion    string  `gorm:"size:255" json:"direccion"`
	Telefono     string  `gorm:"size:20" json:"telefono"`
	ZonaHoraria  string  `gorm:"size:64" json:"zona_horaria"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sede) TableName() string { return "sedes" }

func (s Sede) Franquicia() string {
	if s.FranquiciaID == nil {
		return ""
	}
	return *s.FranquiciaID
}
