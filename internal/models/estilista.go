package models

import "time"

// Estilista is a service professional attached to one sede.
type Estilista struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	SedeID string `gorm:"type:uuid;index;not null" json:"sede_id"`
	Sede   Sede   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Nombre         string   `gorm:"size:100;not null" json:"nombre"`
	Especialidades []string `gorm:"type:jsonb;serializer:json" json:"especialidades"`
	Activo         bool     `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Estilista) TableName() string { return "estilistas" }
