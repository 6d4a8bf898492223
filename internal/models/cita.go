package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cita struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SedeID string `gorm:"type:uuid;index;not null" json:"sede_id"`

	EstilistaID string    `gorm:"type:uuid;index;not null" json:"estilista_id"`
	Estilista   Estilista `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClienteID string  `gorm:"type:uuid;index;not null" json:"cliente_id"`
	Cliente   Cliente `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ServicioID string   `gorm:"type:uuid;not null" json:"servicio_id"`
	Servicio   Servicio `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	FechaHoraInicio time.Time `gorm:"not null;index" json:"fecha_hora_inicio"`
	FechaHoraFin    time.Time `gorm:"not null" json:"fecha_hora_fin"`

	Estado string `gorm:"size:20;default:'pendiente';index" json:"estado"`

	ValorTotal     decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"valor_total"`
	Abono          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"abono"`
	SaldoPendiente decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"saldo_pendiente"`
	MetodoPago     string          `gorm:"size:20" json:"metodo_pago"`

	Notas          string     `gorm:"size:255" json:"notas"`
	ComprobanteKey string     `gorm:"size:255" json:"comprobante_key,omitempty"`
	ConfirmadaEn   *time.Time `json:"confirmada_en,omitempty"`
	CanceladaEn    *time.Time `json:"cancelada_en,omitempty"`
	FinalizadaEn   *time.Time `json:"finalizada_en,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Cita) TableName() string { return "citas" }
