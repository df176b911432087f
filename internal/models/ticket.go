package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ticket is one bus-fare sale record produced by the device ingestion path.
// This service only ever reads tickets; it is the reconciliation target for
// incoming payment postings. Ticket numbers are expected to be unique per
// operator but the upstream feed does not guarantee it, so lookups take the
// first match.
type Ticket struct {
	ID           string          `gorm:"primaryKey;size:36" json:"id"`
	TicketNumber string          `gorm:"size:20;index" json:"ticket_number"`
	TicketDate   time.Time       `json:"ticket_date"`
	Amount       decimal.Decimal `gorm:"type:numeric(10,2)" json:"amount"`
	LuggAmount   decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"lugg_amount"`
	PaymentMode  int             `json:"payment_mode"`
	DeviceID     string          `gorm:"size:45" json:"device_id,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	return
}

func (Ticket) TableName() string {
	return "ticket_records"
}
