package response

import (
	"time"

	"rentwheels/internal/usecase/queries"
)

type CalendarDayResponse struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type CalendarResponse struct {
	From time.Time             `json:"from"`
	To   time.Time             `json:"to"`
	Days []CalendarDayResponse `json:"days"`
}

func FromCalendar(from, to time.Time, days []queries.CalendarDayView) *CalendarResponse {
	resp := &CalendarResponse{From: from, To: to, Days: make([]CalendarDayResponse, len(days))}
	for i, d := range days {
		resp.Days[i] = CalendarDayResponse{
			Date:   d.Date.Format("2006-01-02"),
			Status: d.Status,
		}
	}
	return resp
}
