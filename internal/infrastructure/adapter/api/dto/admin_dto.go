package dto

import "github.com/amirhossein-jamali/linkledger/internal/domain/port/usecase"

// GrantRequest credits a user by email
type GrantRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Amount int64  `json:"amount" binding:"required"`
	Reason string `json:"reason"`
}

// GrantResponse reports an admin credit
type GrantResponse struct {
	UserID    string `json:"userId"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Balance   int64  `json:"balance"`
}

// NewGrantResponse maps a grant result
func NewGrantResponse(r *usecase.GrantResult) GrantResponse {
	return GrantResponse{
		UserID:    r.UserID,
		Reference: r.Reference,
		Amount:    r.Amount,
		Balance:   r.Balance,
	}
}

// StatsResponse summarises the service
type StatsResponse struct {
	Users       int64 `json:"users"`
	Links       int64 `json:"links"`
	ActiveLinks int64 `json:"activeLinks"`
	Purchases   int64 `json:"purchases"`
	CreditsSold int64 `json:"creditsSold"`
}

// NewStatsResponse maps service stats
func NewStatsResponse(s *usecase.Stats) StatsResponse {
	return StatsResponse{
		Users:       s.Users,
		Links:       s.Links,
		ActiveLinks: s.ActiveLinks,
		Purchases:   s.Purchases,
		CreditsSold: s.CreditsSold,
	}
}
