package models

import "time"

// Horario is the working window of an estilista for one weekday
// (0 = domingo … 6 = sábado). Times are "HH:MM" in the sede time zone.
type Horario struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	EstilistaID string `gorm:"type:uuid;not null;uniqueIndex:ux_horarios_estilista_dia" json:"estilista_id"`
	DiaSemana   int    `gorm:"not null;uniqueIndex:ux_horarios_estilista_dia" json:"dia_semana"`

	HoraInicio string `gorm:"size:5;not null" json:"hora_inicio"`
	HoraFin    string `gorm:"size:5;not null" json:"hora_fin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Horario) TableName() string { return "horarios" }
