package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Servicio struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	SedeID string `gorm:"type:uuid;not null;uniqueIndex:ux_servicios_sede_nombre" json:"sede_id"`

	Nombre          string          `gorm:"size:100;not null;uniqueIndex:ux_servicios_sede_nombre" json:"nombre"`
	Descripcion     string          `gorm:"size:255" json:"descripcion"`
	DuracionMinutos int             `gorm:"not null" json:"duracion_minutos"`
	Precio          decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precio"`
	Categoria       string          `gorm:"size:50" json:"categoria"`
	Activo          bool            `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Servicio) TableName() string { return "servicios" }
