package models

import (
	"time"
)

type AuditEntityType string

const (
	AuditEngagement AuditEntityType = "engagement"
	AuditWorkDay    AuditEntityType = "workday"
	AuditPeriod     AuditEntityType = "period"
	AuditInvoice    AuditEntityType = "invoice"
)

func (t AuditEntityType) Valid() bool {
	switch t {
	case AuditEngagement, AuditWorkDay, AuditPeriod, AuditInvoice:
		return true
	}
	return false
}

// AuditLog is an append-only record of workflow events. Rows are never
// mutated or deleted, including during engagement cascade deletion.
type AuditLog struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	EntityType AuditEntityType `gorm:"not null;size:20;index:idx_audit_entity" json:"entity_type"`
	EntityID   uint            `gorm:"not null;index:idx_audit_entity" json:"entity_id"`
	Event      string          `gorm:"not null;size:100" json:"event"`
	Reason     string          `gorm:"type:text" json:"reason,omitempty"`
}
