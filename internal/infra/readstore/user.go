package readstore

import (
	"context"

	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, username, email, first_name, last_name, token_balance, membership_tier
		FROM users
		WHERE id = $1`

	var view queries.UserView
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Username,
		&view.Email,
		&view.FirstName,
		&view.LastName,
		&view.TokenBalance,
		&view.MembershipTier,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user view by ID", err)
	}

	return &view, nil
}
