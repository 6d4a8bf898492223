package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Producto struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	SedeID string `gorm:"type:uuid;index;not null" json:"sede_id"`

	Nombre      string          `gorm:"size:100;not null" json:"nombre"`
	Descripcion string          `gorm:"size:255" json:"descripcion"`
	Precio      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"precio"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	ImagenKey   string          `gorm:"size:255" json:"imagen_key,omitempty"`
	Activo      bool            `gorm:"default:true" json:"activo"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Producto) TableName() string { return "productos" }
