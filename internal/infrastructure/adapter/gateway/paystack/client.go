// Package paystack talks to a Paystack-compatible card gateway over its
// REST API.
package paystack

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/config"
)

const (
	DefaultBaseURL = "https://api.paystack.co"
	defaultTimeout = 15 * time.Second

	maxResponseBytes = 1 << 20
)

var (
	// ErrUnexpectedResponse is returned when the gateway answers with a
	// payload the client cannot trust
	ErrUnexpectedResponse = errors.New("unexpected gateway response")

	// ErrMissingSecret is returned by NewClient without a secret key
	ErrMissingSecret = errors.New("payment gateway secret key is required")
)

// Client implements gateway.PaymentGateway
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	logger     core.Logger
}

// NewClient creates a gateway client from configuration
func NewClient(conf config.PaymentConfig, logger core.Logger) (*Client, error) {
	if conf.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	baseURL := strings.TrimRight(conf.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		secretKey:  conf.SecretKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

var _ gateway.PaymentGateway = (*Client)(nil)

// envelope is the common response wrapper
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

type initializeBody struct {
	Email       string         `json:"email"`
	Amount      int64          `json:"amount"`
	Reference   string         `json:"reference"`
	CallbackURL string         `json:"callback_url,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Reference string         `json:"reference"`
	Status    string         `json:"status"`
	Amount    int64          `json:"amount"`
	Currency  string         `json:"currency"`
	PaidAt    *time.Time     `json:"paid_at"`
	Metadata  map[string]any `json:"metadata"`
}

// Initialize opens a hosted checkout for req.Reference
func (c *Client) Initialize(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResult, error) {
	body := initializeBody{
		Email:       req.Email,
		Amount:      req.AmountMinor,
		Reference:   req.Reference,
		CallbackURL: req.CallbackURL,
		Metadata:    req.Metadata,
	}

	var resp envelope[initializeData]
	if err := c.do(ctx, http.MethodPost, "/transaction/initialize", body, &resp); err != nil {
		return nil, err
	}
	if !resp.Status || resp.Data == nil || resp.Data.AuthorizationURL == "" {
		return nil, fmt.Errorf("%w: initialize: %s", ErrUnexpectedResponse, resp.Message)
	}

	reference := resp.Data.Reference
	if reference == "" {
		reference = req.Reference
	}
	return &gateway.InitializeResult{
		Reference:        reference,
		AuthorizationURL: resp.Data.AuthorizationURL,
		AccessCode:       resp.Data.AccessCode,
	}, nil
}

// Verify asks the gateway for the authoritative state of reference
func (c *Client) Verify(ctx context.Context, reference string) (*gateway.VerifyResult, error) {
	var resp envelope[verifyData]
	path := "/transaction/verify/" + url.PathEscape(reference)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Status || resp.Data == nil {
		return nil, fmt.Errorf("%w: verify: %s", ErrUnexpectedResponse, resp.Message)
	}
	if resp.Data.Reference != "" && resp.Data.Reference != reference {
		return nil, fmt.Errorf("%w: verify returned reference %q", ErrUnexpectedResponse, resp.Data.Reference)
	}

	status, ok := mapStatus(resp.Data.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrUnexpectedResponse, resp.Data.Status)
	}

	return &gateway.VerifyResult{
		Reference:   reference,
		Status:      status,
		AmountMinor: resp.Data.Amount,
		Currency:    resp.Data.Currency,
		PaidAt:      resp.Data.PaidAt,
		Metadata:    resp.Data.Metadata,
	}, nil
}

// mapStatus never turns an unrecognised status into success
func mapStatus(s string) (gateway.PaymentStatus, bool) {
	switch strings.ToLower(s) {
	case "success":
		return gateway.PaymentSuccess, true
	case "failed", "reversed":
		return gateway.PaymentFailed, true
	case "abandoned":
		return gateway.PaymentAbandoned, true
	case "pending", "ongoing", "processing", "queued", "send_otp", "send_pin", "send_birthday", "send_phone", "send_address", "open_url":
		return gateway.PaymentPending, true
	default:
		return "", false
	}
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Payment gateway request failed", map[string]any{
			"method": method,
			"path":   path,
			"error":  err.Error(),
		})
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("Payment gateway response", map[string]any{
		"method":      method,
		"path":        path,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	// 4xx bodies still carry the envelope; the caller decides on Status
	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s %s returned %d", ErrUnexpectedResponse, method, path, resp.StatusCode)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrUnexpectedResponse, path, err)
	}
	return nil
}

// VerifySignature checks a callback body against its signature header
func (c *Client) VerifySignature(body []byte, signature string) bool {
	return ValidSignature(c.secretKey, body, signature)
}

// ValidSignature reports whether signature is the hex HMAC-SHA512 of body
// under secret
func ValidSignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), got)
}

// Sign returns the signature the gateway would send for body
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}
