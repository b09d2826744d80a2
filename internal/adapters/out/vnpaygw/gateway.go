// Package vnpaygw builds signed VNPay checkout sessions. The gateway only
// produces the transaction reference and redirect URL; the payment outcome
// arrives later through the VNPay return callback and is applied by the
// command layer.
package vnpaygw

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"dealership/internal/core/domain/model/payment"
	"dealership/internal/core/ports"
	"dealership/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	version     = "2.1.0"
	command     = "pay"
	currency    = "VND"
	locale      = "vn"
	orderType   = "other"
	dateLayout  = "20060102150405"
	sessionTTL  = 15 * time.Minute
	payGateBase = "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html"
)

// Config carries the merchant credentials issued by VNPay.
type Config struct {
	TmnCode    string
	HashSecret string
	ReturnURL  string

	// PayURL overrides the checkout endpoint; empty means the sandbox.
	PayURL string
}

// Gateway implements ports.VnpayGateway against the VNPay v2.1.0 redirect
// protocol.
type Gateway struct {
	config Config
	now    func() time.Time
}

// NewGateway creates a gateway with the given merchant credentials.
func NewGateway(config Config) (*Gateway, error) {
	if config.TmnCode == "" {
		return nil, errs.NewValueIsRequiredError("tmnCode")
	}
	if config.HashSecret == "" {
		return nil, errs.NewValueIsRequiredError("hashSecret")
	}
	if config.ReturnURL == "" {
		return nil, errs.NewValueIsRequiredError("returnURL")
	}
	if config.PayURL == "" {
		config.PayURL = payGateBase
	}
	return &Gateway{config: config, now: time.Now}, nil
}

// CreateSession generates a transaction reference and the signed redirect URL
// for the payment.
func (g *Gateway) CreateSession(ctx context.Context, aggregate *payment.Payment) (ports.PaymentSession, error) {
	if err := aggregate.Validate(); err != nil {
		return ports.PaymentSession{}, err
	}

	txnRef := uuid.NewString()
	now := g.now()

	// VNPay expects the amount multiplied by 100.
	params := map[string]string{
		"vnp_Version":    version,
		"vnp_Command":    command,
		"vnp_TmnCode":    g.config.TmnCode,
		"vnp_Amount":     fmt.Sprintf("%d", aggregate.Amount().Int64()*100),
		"vnp_CurrCode":   currency,
		"vnp_TxnRef":     txnRef,
		"vnp_OrderInfo":  fmt.Sprintf("payment %s cycle %d", aggregate.ID(), aggregate.NumberCycle()),
		"vnp_OrderType":  orderType,
		"vnp_Locale":     locale,
		"vnp_ReturnUrl":  g.config.ReturnURL,
		"vnp_CreateDate": now.Format(dateLayout),
		"vnp_ExpireDate": now.Add(sessionTTL).Format(dateLayout),
	}

	query := buildQuery(params)
	signature := g.sign(query)
	redirectURL := fmt.Sprintf("%s?%s&vnp_SecureHash=%s", g.config.PayURL, query, signature)

	return ports.PaymentSession{
		TxnRef:      txnRef,
		RedirectURL: redirectURL,
	}, nil
}

// buildQuery renders the parameters as an URL-encoded query string with keys
// in ascending order, the form VNPay signs.
func buildQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+url.QueryEscape(params[key]))
	}
	return strings.Join(pairs, "&")
}

func (g *Gateway) sign(query string) string {
	mac := hmac.New(sha512.New, []byte(g.config.HashSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}
