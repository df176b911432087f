package posgrest

import (
	"context"
	"errors"

	"github.com/transitpay/settlement-service/internal/models"
	"gorm.io/gorm"
)

// TicketRepository reads ticket sale records produced by the device ingestion
// path. This service never writes tickets.
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db,
	}
}

// FindByTicketNumber returns the first ticket with the given number, or nil
// when none exists. The upstream feed does not guarantee ticket numbers are
// unique, so first-match (oldest row) is the deliberate tolerance here.
func (r *TicketRepository) FindByTicketNumber(ctx context.Context, ticketNumber string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).
		Where("ticket_number = ?", ticketNumber).
		Order("created_at").
		First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
