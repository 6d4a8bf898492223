package dto

import "time"

type CitaListDTO struct {
	ID              string    `json:"id"`
	EstilistaID     string    `json:"estilista_id"`
	FechaHoraInicio time.Time `json:"fecha_hora_inicio"`
	FechaHoraFin    time.Time `json:"fecha_hora_fin"`
	Estado          string    `json:"estado"`
	ClienteNombre   string    `json:"cliente_nombre"`
	ServicioNombre  string    `json:"servicio_nombre"`
	SaldoPendiente  string    `json:"saldo_pendiente"`
}
