package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/amirhossein-jamali/linkledger/internal/domain/entity"
	"github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"
)

// DurationValue accepts "3d", "2w", "0.5" or a bare number of weeks
type DurationValue string

// UnmarshalJSON implements json.Unmarshaler
func (d *DurationValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DurationValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*d = DurationValue(n.String())
	return nil
}

// CreateLinkRequest buys a new link
type CreateLinkRequest struct {
	Name          string          `json:"name" binding:"required"`
	Type          string          `json:"type" binding:"required"`
	Duration      DurationValue   `json:"duration" binding:"required"`
	PlatformCount int             `json:"platformCount"`
	Content       json.RawMessage `json:"content" binding:"required"`
}

// UpdateLinkRequest edits name and content of an owned link
type UpdateLinkRequest struct {
	Name    string          `json:"name"`
	Content json.RawMessage `json:"content" binding:"required"`
}

// ExtendLinkRequest adds whole weeks
type ExtendLinkRequest struct {
	Weeks int `json:"weeks" binding:"required,min=1"`
}

// LinkResponse is an owned link
type LinkResponse struct {
	ID               string             `json:"id"`
	PublicID         string             `json:"publicId"`
	Name             string             `json:"name"`
	Type             string             `json:"type"`
	PlatformCount    int                `json:"platformCount,omitempty"`
	PageCount        int                `json:"pageCount,omitempty"`
	Content          entity.LinkContent `json:"content"`
	ExpiresAt        time.Time          `json:"expiresAt"`
	Expired          bool               `json:"expired"`
	RemainingSeconds int64              `json:"remainingSeconds"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// NewLinkResponse maps a link view
func NewLinkResponse(v *usecase.LinkView) LinkResponse {
	l := v.Link
	return LinkResponse{
		ID:               l.ID,
		PublicID:         l.PublicID,
		Name:             l.Name,
		Type:             string(l.Type),
		PlatformCount:    l.PlatformCount,
		PageCount:        l.PageCount,
		Content:          l.Content,
		ExpiresAt:        l.ExpiresAt,
		Expired:          v.Expired,
		RemainingSeconds: int64(v.Remaining / time.Second),
		CreatedAt:        l.CreatedAt,
		UpdatedAt:        l.UpdatedAt,
	}
}

// NewLinkListResponse maps a list of link views
func NewLinkListResponse(views []*usecase.LinkView) []LinkResponse {
	out := make([]LinkResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewLinkResponse(v))
	}
	return out
}

// PublicLinkResponse is what a visitor sees; owner data is withheld
type PublicLinkResponse struct {
	PublicID  string             `json:"publicId"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	Content   entity.LinkContent `json:"content"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// NewPublicLinkResponse maps a link view for visitors
func NewPublicLinkResponse(v *usecase.LinkView) PublicLinkResponse {
	return PublicLinkResponse{
		PublicID:  v.Link.PublicID,
		Name:      v.Link.Name,
		Type:      string(v.Link.Type),
		Content:   v.Link.Content,
		ExpiresAt: v.Link.ExpiresAt,
	}
}

// LinkPurchaseResponse is returned by create and extend
type LinkPurchaseResponse struct {
	Link           LinkResponse `json:"link"`
	Price          int64        `json:"price"`
	Balance        int64        `json:"balance"`
	PreviousExpiry *time.Time   `json:"previousExpiry,omitempty"`
}

// NewLinkPurchaseResponse maps a purchase result
func NewLinkPurchaseResponse(r *usecase.LinkPurchaseResult) LinkPurchaseResponse {
	return LinkPurchaseResponse{
		Link:           NewLinkResponse(r.Link),
		Price:          r.Price,
		Balance:        r.Balance,
		PreviousExpiry: r.PreviousExpiry,
	}
}
