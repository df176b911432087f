package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/transitpay/settlement-service/internal/middlewares"
	"github.com/transitpay/settlement-service/internal/models"
	"github.com/transitpay/settlement-service/internal/models/dto"
	"github.com/transitpay/settlement-service/internal/service"
	"gorm.io/gorm"
)

// ReviewServiceIn is the review workflow surface the settlement endpoints use.
type ReviewServiceIn interface {
	Verify(ctx context.Context, reviewer models.Reviewer, req *dto.VerificationRequest) (*models.PaymentPosting, error)
	ManualMatch(ctx context.Context, reviewer models.Reviewer, req *dto.ManualMatchRequest) (*models.PaymentPosting, error)
	List(ctx context.Context, reviewer models.Reviewer, filter dto.SettlementFilter) ([]models.PaymentPosting, error)
}

// SummaryServiceIn is the read-side aggregation surface.
type SummaryServiceIn interface {
	Summarize(ctx context.Context, reviewer models.Reviewer, filter dto.SettlementFilter) (*dto.SettlementSummary, error)
}

// SettlementHandler exposes the review queue, verification decisions, manual
// matching and the dashboard summary to authenticated staff.
type SettlementHandler struct {
	Review  ReviewServiceIn
	Summary SummaryServiceIn
}

func NewSettlementHandler(review ReviewServiceIn, summary SummaryServiceIn) *SettlementHandler {
	return &SettlementHandler{
		Review:  review,
		Summary: summary,
	}
}

// GET /api/settlements
func (h *SettlementHandler) List(c *gin.Context) {
	reviewer := middlewares.CurrentReviewer(c)
	filter := filterFromQuery(c)

	postings, err := h.Review.List(c.Request.Context(), reviewer, filter)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "success",
		"data":    postings,
		"count":   len(postings),
	})
}

// GET /api/settlements/summary
func (h *SettlementHandler) Summarize(c *gin.Context) {
	reviewer := middlewares.CurrentReviewer(c)
	filter := filterFromQuery(c)

	summary, err := h.Summary.Summarize(c.Request.Context(), reviewer, filter)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": summary})
}

// POST /api/settlements/verify
func (h *SettlementHandler) Verify(c *gin.Context) {
	var req dto.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reviewer := middlewares.CurrentReviewer(c)
	posting, err := h.Review.Verify(c.Request.Context(), reviewer, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction verified successfully", "data": posting})
}

// POST /api/settlements/manual-match
func (h *SettlementHandler) ManualMatch(c *gin.Context) {
	var req dto.ManualMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reviewer := middlewares.CurrentReviewer(c)
	posting, err := h.Review.ManualMatch(c.Request.Context(), reviewer, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction matched successfully", "data": posting})
}

func (h *SettlementHandler) renderError(c *gin.Context, err error) {
	var decided *service.AlreadyDecidedError
	var claimed *service.TicketClaimedError

	switch {
	case errors.Is(err, service.ErrInsufficientRole):
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	case errors.Is(err, service.ErrBadDateRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownDecision):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.As(err, &decided):
		c.JSON(http.StatusConflict, gin.H{
			"error":       "Transaction already " + string(decided.Status),
			"verified_by": decided.DecidedBy,
		})
	case errors.As(err, &claimed):
		c.JSON(http.StatusConflict, gin.H{
			"error":          "Ticket already claimed",
			"transaction_id": claimed.TransactionID,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
	default:
		logrus.Errorf("settlement request failed: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "request failed"})
	}
}

func filterFromQuery(c *gin.Context) dto.SettlementFilter {
	return dto.SettlementFilter{
		FromDate:             c.Query("from_date"),
		ToDate:               c.Query("to_date"),
		VerificationStatus:   c.Query("verification_status"),
		ReconciliationStatus: c.Query("reconciliation_status"),
		PaymentStatus:        c.Query("payment_status"),
		MerchantID:           c.Query("merchant_id"),
	}
}
