package queries

import (
	"context"

	"gymgain/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error)
	SocialFeed(ctx context.Context) ([]*SocialFeedItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID) ([]*BookingListItem, error) {
	items, err := q.store.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return items, nil
}

func (q *bookingQueriesImpl) SocialFeed(ctx context.Context) ([]*SocialFeedItem, error) {
	items, err := q.store.SocialFeed(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load social feed")
	}
	return items, nil
}
