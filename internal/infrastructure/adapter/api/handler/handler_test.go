package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/linkledger/internal/domain/error"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/gateway/paystack"
	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
	mgateway "github.com/amirhossein-jamali/linkledger/mocks/port/gateway"
	muse "github.com/amirhossein-jamali/linkledger/mocks/port/usecase"
)

const (
	testToken  = "valid-token"
	testSecret = "sk_test_callback"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type secretVerifier string

func (s secretVerifier) VerifySignature(body []byte, signature string) bool {
	return paystack.ValidSignature(string(s), body, signature)
}

type apiFixture struct {
	router   *gin.Engine
	users    *muse.MockUserUseCase
	links    *muse.MockLinkUseCase
	payments *muse.MockPaymentUseCase
	bonuses  *muse.MockBonusUseCase
	now      time.Time
}

func newAPIFixture(t *testing.T) *apiFixture {
	f := &apiFixture{
		users:    muse.NewMockUserUseCase(t),
		links:    muse.NewMockLinkUseCase(t),
		payments: muse.NewMockPaymentUseCase(t),
		bonuses:  muse.NewMockBonusUseCase(t),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	log := logger.NewNoopLogger()

	caller, err := entity.NewUser("user-1", "owner@example.com", "owner", entity.RoleUser,
		timeprovider.NewFixedTimeProvider(f.now))
	require.NoError(t, err)

	verifier := mgateway.NewMockIdentityVerifier(t)
	verifier.EXPECT().Verify(mock.Anything, testToken).
		Return(&entity.Identity{Subject: "user-1", Email: "owner@example.com"}, nil).Maybe()
	verifier.EXPECT().Verify(mock.Anything, mock.Anything).Return(nil, errs.ErrUnauthorized).Maybe()
	f.users.EXPECT().EnsureUser(mock.Anything, mock.Anything).Return(caller, nil).Maybe()

	linkHandler := NewLinkHandler(f.links, log)
	txHandler := NewTransactionHandler(f.payments, f.users, secretVerifier(testSecret), log)
	userHandler := NewUserHandler(f.users, f.bonuses, log)

	f.router = gin.New()
	f.router.GET("/public/links/:publicId", linkHandler.GetPublic)
	f.router.POST("/payments/callback", txHandler.PaymentCallback)

	authed := f.router.Group("", middleware.RequireUser(verifier, f.users, log))
	authed.POST("/links", linkHandler.Create)
	authed.POST("/links/:id/extend", linkHandler.Extend)
	authed.PUT("/links/:id", linkHandler.Update)
	authed.GET("/transactions", txHandler.List)
	authed.POST("/messaging/claim", userHandler.ClaimBonus)
	return f
}

func (f *apiFixture) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	case []byte:
		buf.Write(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func giveawayLink(now time.Time) *entity.Link {
	return &entity.Link{
		ID:            "link-1",
		PublicID:      "abcdefghij",
		OwnerID:       "user-1",
		Name:          "Spring draw",
		Type:          entity.LinkTypeGiveaway,
		PlatformCount: 1,
		Content: &entity.GiveawayContent{
			Title:    "Spring draw",
			Writeup:  "One winner",
			ImageURL: "https://cdn.example.com/a.png",
		},
		ExpiresAt: now.Add(7 * 24 * time.Hour),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewInsufficientBalanceError("u", 10, 5), http.StatusPaymentRequired},
		{errs.NewValidationError("name", "is required"), http.StatusBadRequest},
		{errs.ErrInvalidAmount, http.StatusBadRequest},
		{errs.ErrMessagingIdentityRequired, http.StatusPreconditionFailed},
		{errs.ErrUnauthorized, http.StatusUnauthorized},
		{errs.ErrForbidden, http.StatusForbidden},
		{fmt.Errorf("lookup: %w", errs.ErrLinkNotFound), http.StatusNotFound},
		{errs.ErrLinkExpired, http.StatusGone},
		{errs.ErrMessagingIdentityBound, http.StatusConflict},
		{errs.ErrTransactionTerminal, http.StatusConflict},
		{errs.ErrTransientConflict, http.StatusServiceUnavailable},
		{errs.ErrRateLimited, http.StatusTooManyRequests},
		{errs.NewUpstreamGatewayError("verify", "ref", fmt.Errorf("timeout")), http.StatusBadGateway},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestNewErrorResponse_HidesInternalCauses(t *testing.T) {
	resp := NewErrorResponse(fmt.Errorf("pq: relation users does not exist"))
	assert.Equal(t, "Internal server error", resp.Message)
	assert.Equal(t, errs.CodeInternalServer, resp.Code)

	resp = NewErrorResponse(errs.NewUpstreamGatewayError("verify", "ref", fmt.Errorf("dial tcp 10.0.0.1:443")))
	assert.Equal(t, errs.ErrUpstreamGateway.Error(), resp.Message)
	assert.NotContains(t, resp.Message, "10.0.0.1")
}

func TestLinkHandler_Create(t *testing.T) {
	f := newAPIFixture(t)
	link := giveawayLink(f.now)

	f.links.EXPECT().Create(mock.Anything, "user-1", mock.MatchedBy(func(req usecase.CreateLinkRequest) bool {
		return req.Duration == "1" && req.PlatformCount == 1 && req.Content.Type() == entity.LinkTypeGiveaway
	})).Return(&usecase.LinkPurchaseResult{
		Link:    &usecase.LinkView{Link: link, Remaining: 7 * 24 * time.Hour},
		Price:   4000,
		Balance: 1000,
	}, nil)

	rec := f.do(http.MethodPost, "/links", map[string]any{
		"name":     "Spring draw",
		"type":     "giveaway",
		"duration": 1,
		"content": map[string]any{
			"title":    "Spring draw",
			"writeup":  "One winner",
			"imageUrl": "https://cdn.example.com/a.png",
		},
	}, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp struct {
		Price   int64 `json:"price"`
		Balance int64 `json:"balance"`
		Link    struct {
			PublicID         string         `json:"publicId"`
			RemainingSeconds int64          `json:"remainingSeconds"`
			Content          map[string]any `json:"content"`
		} `json:"link"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4000), resp.Price)
	assert.Equal(t, int64(1000), resp.Balance)
	assert.Equal(t, "abcdefghij", resp.Link.PublicID)
	assert.Equal(t, int64(7*24*3600), resp.Link.RemainingSeconds)
	assert.Equal(t, "Spring draw", resp.Link.Content["title"])
}

func TestLinkHandler_CreateInsufficientBalance(t *testing.T) {
	f := newAPIFixture(t)
	f.links.EXPECT().Create(mock.Anything, "user-1", mock.Anything).
		Return(nil, errs.NewInsufficientBalanceError("user-1", 4000, 1000))

	rec := f.do(http.MethodPost, "/links", map[string]any{
		"name":     "Spring draw",
		"type":     "voting",
		"duration": "1w",
		"content":  map[string]any{"contestantName": "Ada"},
	}, nil)

	require.Equal(t, http.StatusPaymentRequired, rec.Code)
	resp := decodeError(t, rec)
	assert.Equal(t, errs.CodeInsufficientBalance, resp.Code)
	require.NotNil(t, resp.Required)
	assert.Equal(t, int64(4000), *resp.Required)
	assert.Equal(t, int64(1000), *resp.Available)
}

func TestLinkHandler_CreateRejectsBeforeUseCase(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/links", map[string]any{
		"name":     "x",
		"type":     "poll",
		"duration": "1w",
		"content":  map[string]any{},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Fields, "type")

	rec = f.do(http.MethodPost, "/links", `{"name":`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLinkHandler_RequiresToken(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(http.MethodPost, "/links", map[string]any{}, map[string]string{"Authorization": "Bearer nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(http.MethodPost, "/links", map[string]any{}, map[string]string{"Authorization": ""})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLinkHandler_Extend(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/links/link-1/extend", map[string]any{"weeks": 0}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.links.EXPECT().Extend(mock.Anything, "link-1", "user-1", 2).
		Return(nil, errs.NewInsufficientBalanceError("user-1", 8000, 1000))
	rec = f.do(http.MethodPost, "/links/link-1/extend", map[string]any{"weeks": 2}, nil)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestLinkHandler_UpdateDecodesStoredVariant(t *testing.T) {
	f := newAPIFixture(t)
	link := giveawayLink(f.now)
	view := &usecase.LinkView{Link: link}

	f.links.EXPECT().Get(mock.Anything, "link-1", "user-1").Return(view, nil)
	f.links.EXPECT().UpdateContent(mock.Anything, "link-1", "user-1", "Renamed",
		mock.MatchedBy(func(c entity.LinkContent) bool {
			g, ok := c.(*entity.GiveawayContent)
			return ok && g.Title == "New title"
		})).Return(view, nil)

	rec := f.do(http.MethodPut, "/links/link-1", map[string]any{
		"name":    "Renamed",
		"content": map[string]any{"title": "New title", "writeup": "w", "imageUrl": "https://cdn.example.com/b.jpg"},
	}, nil)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestLinkHandler_GetPublicExpired(t *testing.T) {
	f := newAPIFixture(t)
	f.links.EXPECT().GetPublic(mock.Anything, "abcdefghij").Return(nil, errs.ErrLinkExpired)

	rec := f.do(http.MethodGet, "/public/links/abcdefghij", nil, nil)
	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, errs.CodeLinkExpired, decodeError(t, rec).Code)
}

func TestTransactionHandler_ListFilter(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/transactions?status=refunded", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.users.EXPECT().Transactions(mock.Anything, "user-1", mock.MatchedBy(func(filter persistence.TransactionFilter) bool {
		return filter.Page == 2 && filter.Limit == 5 && filter.Status != nil && *filter.Status == entity.StatusSuccess
	})).Return(&usecase.TransactionPage{Total: 0, Page: 2, Limit: 5}, nil)
	rec = f.do(http.MethodGet, "/transactions?page=2&limit=5&status=success", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.NotNil(t, resp.Items)
}

func TestTransactionHandler_PaymentCallback(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"ref-1"}}`)
	signed := map[string]string{SignatureHeader: paystack.Sign(testSecret, body)}

	t.Run("bad signature", func(t *testing.T) {
		f := newAPIFixture(t)
		rec := f.do(http.MethodPost, "/payments/callback", body, map[string]string{SignatureHeader: "00"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("credited", func(t *testing.T) {
		f := newAPIFixture(t)
		f.payments.EXPECT().HandleCallback(mock.Anything, "ref-1").Return(&usecase.PaymentOutcome{
			Reference: "ref-1",
			Status:    entity.StatusSuccess,
			Credits:   5000,
			Credited:  true,
		}, nil)

		rec := f.do(http.MethodPost, "/payments/callback", body, signed)
		require.Equal(t, http.StatusOK, rec.Code)
		var resp dto.PaymentOutcomeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Credited)
	})

	t.Run("unknown reference is acknowledged", func(t *testing.T) {
		f := newAPIFixture(t)
		f.payments.EXPECT().HandleCallback(mock.Anything, "ref-1").Return(nil, errs.ErrTransactionNotFound)

		rec := f.do(http.MethodPost, "/payments/callback", body, signed)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("gateway down asks for a retry", func(t *testing.T) {
		f := newAPIFixture(t)
		f.payments.EXPECT().HandleCallback(mock.Anything, "ref-1").
			Return(nil, errs.NewUpstreamGatewayError("verify", "ref-1", fmt.Errorf("timeout")))

		rec := f.do(http.MethodPost, "/payments/callback", body, signed)
		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("no reference", func(t *testing.T) {
		f := newAPIFixture(t)
		empty := []byte(`{"event":"charge.success","data":{}}`)
		rec := f.do(http.MethodPost, "/payments/callback", empty,
			map[string]string{SignatureHeader: paystack.Sign(testSecret, empty)})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_ClaimBonus(t *testing.T) {
	f := newAPIFixture(t)
	f.bonuses.EXPECT().Claim(mock.Anything, "user-1", int64(42)).
		Return(&usecase.BonusClaimResult{BonusAwarded: true, BonusAmount: 2000, Balance: 2000}, nil)

	rec := f.do(http.MethodPost, "/messaging/claim", map[string]any{"messagingId": 42}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ClaimResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.BonusAwarded)

	f.bonuses.EXPECT().Claim(mock.Anything, "user-1", int64(43)).Return(nil, errs.ErrMessagingIdentityBound)
	rec = f.do(http.MethodPost, "/messaging/claim", map[string]any{"messagingId": 43}, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
