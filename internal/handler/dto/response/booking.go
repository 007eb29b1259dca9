package response

import (
	"gymgain/internal/domain/booking"
	"gymgain/internal/usecase/queries"
)

type BookingResponse struct {
	ID           int64  `json:"id"`
	ActivityName string `json:"activityName"`
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	BookingDate  string `json:"bookingDate"`
	Status       string `json:"status"`
}

func FromBookingListItem(rm *queries.BookingListItem) *BookingResponse {
	return &BookingResponse{
		ID:           rm.ID,
		ActivityName: rm.ActivityName,
		Day:          rm.Day,
		StartTime:    rm.StartTime,
		BookingDate:  rm.BookingDate.Format(booking.DateLayout),
		Status:       rm.Status,
	}
}

func FromBookingList(rms []*queries.BookingListItem) []*BookingResponse {
	result := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		result[i] = FromBookingListItem(rm)
	}
	return result
}

type SocialFeedItemResponse struct {
	Username     string `json:"username"`
	ActivityName string `json:"activityName"`
	BookingDate  string `json:"bookingDate"`
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
}

func FromSocialFeed(rms []*queries.SocialFeedItem) []*SocialFeedItemResponse {
	result := make([]*SocialFeedItemResponse, len(rms))
	for i, rm := range rms {
		result[i] = &SocialFeedItemResponse{
			Username:     rm.Username,
			ActivityName: rm.ActivityName,
			BookingDate:  rm.BookingDate.Format(booking.DateLayout),
			Day:          rm.Day,
			StartTime:    rm.StartTime,
		}
	}
	return result
}
