package user

import (
	"time"

	"github.com/google/uuid"
)

// SignupTokenGrant is the token balance a new member starts with.
const SignupTokenGrant int32 = 20

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	firstName    string
	lastName     string
	tokenBalance int32
	tier         Tier
	createdAt    time.Time
}

func NewUser(username Username, email Email, passwordHash, firstName, lastName string) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		tokenBalance: SignupTokenGrant,
		tier:         TierBase,
	}
}

func ReconstructUser(
	id uuid.UUID,
	username Username,
	email Email,
	passwordHash, firstName, lastName string,
	tokenBalance int32,
	tier Tier,
	createdAt time.Time,
) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		firstName:    firstName,
		lastName:     lastName,
		tokenBalance: tokenBalance,
		tier:         tier,
		createdAt:    createdAt,
	}
}

func (u *User) CanAfford(cost int32) bool {
	return u.tokenBalance >= cost
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) FirstName() string    { return u.firstName }
func (u *User) LastName() string     { return u.lastName }
func (u *User) TokenBalance() int32  { return u.tokenBalance }
func (u *User) Tier() Tier           { return u.tier }
func (u *User) CreatedAt() time.Time { return u.createdAt }
