package dto

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/transitpay/settlement-service/internal/models"
)

// GatewayPosting is the settlement payload delivered by the payment gateway.
// Only the fields the reconciliation core interprets are declared; the long
// tail of card/terminal/EMV metadata rides along in the raw request body,
// which is preserved verbatim on the posting record.
type GatewayPosting struct {
	TransactionID     string          `json:"transactionID"`
	MerchantID        string          `json:"merchantId"`
	TransactionRRN    string          `json:"transactionRRN"`
	Checksum          string          `json:"checksum"`
	TransactionAmount decimal.Decimal `json:"transactionAmount"`
	TransactionDate   string          `json:"transactionDate"`
	TransactionTime   string          `json:"transactionTime"`
	ResponseCode      string          `json:"responseCode"`
	TransactionStatus string          `json:"transactionStatus"`

	InvoiceNumber  string          `json:"invoiceNumber,omitempty"`
	BillNumber     string          `json:"billNumber,omitempty"`
	RefTxnID       string          `json:"refTxnId,omitempty"`
	Name           string          `json:"name,omitempty"`
	BusinessName   string          `json:"businessName,omitempty"`
	CardNumber     string          `json:"transactionCardNumber,omitempty"`
	CardHolderName string          `json:"cardHolderName,omitempty"`
	CardType       string          `json:"cardType,omitempty"`
	TerminalID     string          `json:"transactionTerminalId,omitempty"`
	STAN           string          `json:"transactionSTAN,omitempty"`
	AuthCode       string          `json:"transactionAuthCode,omitempty"`
	AcquirerName   string          `json:"acquirerName,omitempty"`
	CurrencyID     string          `json:"currencyId,omitempty"`
	Narration      string          `json:"narration,omitempty"`
	CashBack       decimal.Decimal `json:"cashBack,omitempty"`
	TipAmount      decimal.Decimal `json:"tipAmount,omitempty"`
}

func (g *GatewayPosting) Sanitize() {
	g.TransactionID = strings.TrimSpace(g.TransactionID)
	g.MerchantID = strings.TrimSpace(g.MerchantID)
	g.TransactionRRN = strings.TrimSpace(g.TransactionRRN)
	g.Checksum = strings.TrimSpace(g.Checksum)
	g.TransactionDate = strings.TrimSpace(g.TransactionDate)
	g.TransactionTime = strings.TrimSpace(g.TransactionTime)
	g.ResponseCode = strings.TrimSpace(g.ResponseCode)
	g.InvoiceNumber = strings.TrimSpace(g.InvoiceNumber)
}

// MissingRequiredFields returns the gateway field names that are absent from
// the payload, in the gateway's own naming so the rejection message can be
// correlated on their side. An empty slice means the payload is acceptable.
func (g *GatewayPosting) MissingRequiredFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"transactionID", g.TransactionID},
		{"merchantId", g.MerchantID},
		{"transactionRRN", g.TransactionRRN},
		{"checksum", g.Checksum},
		{"transactionDate", g.TransactionDate},
		{"transactionTime", g.TransactionTime},
		{"responseCode", g.ResponseCode},
		{"transactionStatus", g.TransactionStatus},
	}
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if g.TransactionAmount.IsZero() {
		missing = append(missing, "transactionAmount")
	}
	return missing
}

// ToEntity maps the payload onto a new posting record in its initial state.
// The combined transaction datetime is parsed separately by the intake
// pipeline so a parse failure can reject the payload before anything is
// persisted.
func (g *GatewayPosting) ToEntity() *models.PaymentPosting {
	return &models.PaymentPosting{
		TransactionID:        g.TransactionID,
		MerchantID:           g.MerchantID,
		RRN:                  g.TransactionRRN,
		ChecksumReceived:     g.Checksum,
		Amount:               g.TransactionAmount,
		CashBack:             g.CashBack,
		TipAmount:            g.TipAmount,
		TransactionDate:      g.TransactionDate,
		TransactionTime:      g.TransactionTime,
		ResponseCode:         g.ResponseCode,
		TransactionStatus:    g.TransactionStatus,
		InvoiceNumber:        g.InvoiceNumber,
		BillNumber:           g.BillNumber,
		RefTxnID:             g.RefTxnID,
		CardNumber:           g.CardNumber,
		CardHolderName:       g.CardHolderName,
		CardType:             g.CardType,
		TerminalID:           g.TerminalID,
		STAN:                 g.STAN,
		AuthCode:             g.AuthCode,
		AcquirerName:         g.AcquirerName,
		CurrencyID:           g.CurrencyID,
		Narration:            g.Narration,
		ProcessingStatus:     models.ProcessingReceived,
		VerificationStatus:   models.VerificationUnverified,
		ReconciliationStatus: models.ReconciliationPending,
	}
}

// Acknowledgement is the fast answer returned to the gateway. It only says
// "received and not malformed"; reconciliation outcome is never exposed here.
// The merchant_refTxnId echoes the gateway's own bill reference so it can
// correlate the acknowledgement.
type Acknowledgement struct {
	Status           int    `json:"status"`
	Message          string `json:"message"`
	MerchantRefTxnID string `json:"merchant_refTxnId"`
}
