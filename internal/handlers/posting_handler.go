package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"github.com/transitpay/settlement-service/internal/service"
)

// IntakeServiceIn is the intake pipeline surface the webhook and the event
// consumer depend on.
type IntakeServiceIn interface {
	Ingest(ctx context.Context, payload *dto.GatewayPosting, raw []byte) (*dto.Acknowledgement, error)
	Process(ctx context.Context, transactionID string) error
}

// PostingHandler receives gateway settlement postings over HTTP and drives
// the asynchronous pipeline from Kafka events.
type PostingHandler struct {
	Service IntakeServiceIn
}

func NewPostingHandler(s IntakeServiceIn) *PostingHandler {
	return &PostingHandler{Service: s}
}

// POST /api/settlements/webhook
//
// The gateway only ever sees a fast, generic acknowledgement here: 400 for
// malformed payloads (no record created), 200 otherwise. Reconciliation
// outcome is internal.
func (h *PostingHandler) Ingest(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid request body"})
		return
	}

	var payload dto.GatewayPosting
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": "Invalid JSON format"})
		return
	}

	ack, err := h.Service.Ingest(c.Request.Context(), &payload, raw)
	if err != nil {
		var missing *service.MissingFieldsError
		var badDate *service.InvalidDateTimeError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  400,
				"message": fmt.Sprintf("Missing required fields: %v", missing.Fields),
			})
		case errors.As(err, &badDate):
			c.JSON(http.StatusBadRequest, gin.H{"status": 400, "message": err.Error()})
		default:
			logrus.Errorf("posting intake failed: %s", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{"status": 500, "message": "Data entry failed"})
		}
		return
	}

	c.JSON(http.StatusOK, ack)
}

// HandleEvents is the Kafka consumer entry point. A returned error makes the
// consumer retry and eventually dead-letter the message.
func (h *PostingHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PostingReceivedTopic:
		var event models.PostingReceivedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing posting received event %s", err.Error())
			return fmt.Errorf("error parsing posting received event %w", err)
		}
		if err := h.Service.Process(ctx, event.TransactionID); err != nil {
			return fmt.Errorf("error processing posting %s %w", event.TransactionID, err)
		}
		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}
