package response

import (
	"gymgain/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ScheduleItemResponse struct {
	ScheduleID   int64  `json:"scheduleId"`
	Day          string `json:"day"`
	StartTime    string `json:"startTime"`
	Capacity     int32  `json:"capacity"`
	ActivityName string `json:"activityName"`
	Description  string `json:"description"`
	Cost         int32  `json:"cost"`
	TierRequired int16  `json:"tierRequired"`
	BookingDate  string `json:"bookingDate"`
	BookedCount  int32  `json:"bookedCount"`
	SpotsLeft    int32  `json:"spotsLeft"`
}

func FromScheduleItems(items []*queries.ScheduleItemView) []*ScheduleItemResponse {
	result := make([]*ScheduleItemResponse, len(items))
	for i, item := range items {
		var resp ScheduleItemResponse
		_ = copier.Copy(&resp, item)
		resp.SpotsLeft = item.Capacity - item.BookedCount
		result[i] = &resp
	}
	return result
}
