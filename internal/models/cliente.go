package models

import "time"

// Cliente simple, sin login, vinculado a la sede donde se registró.
type Cliente struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	SedeID string `gorm:"type:uuid;index;not null" json:"sede_id"`

	Nombre   string `gorm:"size:100;not null" json:"nombre"`
	Correo   string `gorm:"size:100" json:"correo"`
	Telefono string `gorm:"size:20;index" json:"telefono"`

	FechaCreacion time.Time `gorm:"autoCreateTime;index" json:"fecha_creacion"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return "clientes" }
