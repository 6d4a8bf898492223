package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// newID fills an empty string primary key before insert.
func newID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (s *Sede) BeforeCreate(*gorm.DB) error       { newID(&s.ID); return nil }
func (f *Franquicia) BeforeCreate(*gorm.DB) error { newID(&f.ID); return nil }
func (e *Estilista) BeforeCreate(*gorm.DB) error  { newID(&e.ID); return nil }
func (c *Cliente) BeforeCreate(*gorm.DB) error    { newID(&c.ID); return nil }
func (s *Servicio) BeforeCreate(*gorm.DB) error   { newID(&s.ID); return nil }
func (h *Horario) BeforeCreate(*gorm.DB) error    { newID(&h.ID); return nil }
func (b *Bloqueo) BeforeCreate(*gorm.DB) error    { newID(&b.ID); return nil }
func (c *Cita) BeforeCreate(*gorm.DB) error       { newID(&c.ID); return nil }
func (p *Producto) BeforeCreate(*gorm.DB) error   { newID(&p.ID); return nil }
func (a *AuditLog) BeforeCreate(*gorm.DB) error   { newID(&a.ID); return nil }
