package repository

import (
	"context"

	"gymgain/internal/domain/user"
	"gymgain/internal/infra"
	"gymgain/internal/infra/db"
	"gymgain/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, token_balance, membership_tier)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := tx.QueryRow(ctx, query,
		u.ID(),
		u.Username().String(),
		u.Email().String(),
		u.PasswordHash(),
		u.FirstName(),
		u.LastName(),
		u.TokenBalance(),
		u.Tier().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}

func (r *UserRepository) MemberForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.MemberSnapshot, error) {
	const query = `
		SELECT id, username, token_balance, membership_tier
		FROM users
		WHERE id = $1
		FOR UPDATE`

	var (
		snap shared.MemberSnapshot
		tier string
	)
	err := tx.QueryRow(ctx, query, id).Scan(&snap.ID, &snap.Username, &snap.TokenBalance, &tier)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user row", err)
	}
	snap.Tier = user.Tier(tier)

	return &snap, nil
}

// Debit is conditional on the balance covering the amount, so the balance
// invariant holds even if a caller skips the policy check.
func (r *UserRepository) Debit(ctx context.Context, tx db.DBTX, id uuid.UUID, amount int32) (int32, error) {
	const query = `
		UPDATE users
		SET token_balance = token_balance - $1
		WHERE id = $2 AND token_balance >= $1
		RETURNING token_balance`

	var newBalance int32
	err := tx.QueryRow(ctx, query, amount, id).Scan(&newBalance)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("balance does not cover debit", err, infra.KindCheckViolated)
		}
		return 0, infra.WrapRepoErr("failed to debit tokens", err)
	}

	return newBalance, nil
}

func (r *UserRepository) Credit(ctx context.Context, tx db.DBTX, id uuid.UUID, amount int32) (int32, error) {
	const query = `
		UPDATE users
		SET token_balance = token_balance + $1
		WHERE id = $2
		RETURNING token_balance`

	var newBalance int32
	err := tx.QueryRow(ctx, query, amount, id).Scan(&newBalance)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to credit tokens", err)
	}

	return newBalance, nil
}
