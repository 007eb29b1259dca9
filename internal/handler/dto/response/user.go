package response

import (
	"gymgain/internal/infra/session"
	"gymgain/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	TokenBalance   int32     `json:"tokenBalance"`
	MembershipTier string    `json:"membershipTier"`
}

func FromUserView(rm *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:             rm.ID,
		Username:       rm.Username,
		Email:          rm.Email,
		FirstName:      rm.FirstName,
		LastName:       rm.LastName,
		TokenBalance:   rm.TokenBalance,
		MembershipTier: rm.MembershipTier,
	}
}

type FlashResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func FromFlash(f *session.Flash) *FlashResponse {
	if f == nil {
		return nil
	}
	return &FlashResponse{Kind: f.Kind, Message: f.Message}
}
