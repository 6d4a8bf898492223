package models

import "time"

// Bloqueo is an unavailable window. One-off blocks use FechaInicio/FechaFin;
// recurring blocks repeat every DiaSemana between HoraInicio and HoraFin
// (the whole day when both are empty).
type Bloqueo struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	EstilistaID string `gorm:"type:uuid;index;not null" json:"estilista_id"`
	Motivo      string `gorm:"size:255" json:"motivo"`

	FechaInicio *time.Time `json:"fecha_inicio,omitempty"`
	FechaFin    *time.Time `json:"fecha_fin,omitempty"`

	EsRecurrente bool   `gorm:"default:false" json:"es_recurrente"`
	DiaSemana    *int   `json:"dia_semana,omitempty"`
	HoraInicio   string `gorm:"size:5" json:"hora_inicio,omitempty"`
	HoraFin      string `gorm:"size:5" json:"hora_fin,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Bloqueo) TableName() string { return "bloqueos" }
