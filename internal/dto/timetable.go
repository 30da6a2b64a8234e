package dto

import "github.com/rahat-dev/ramadan-times-api/internal/models"

// DivisionInfo lists a division together with its district names.
type DivisionInfo struct {
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}

// TodayCard is the single-day view rendered above the calendar.
type TodayCard struct {
	RamadanDay   int    `json:"ramadan_day"`
	Date         string `json:"date"`
	DateLabel    string `json:"date_label"`
	Weekday      string `json:"weekday"`
	SehriEnd     string `json:"sehri_end"`
	Iftar        string `json:"iftar"`
	SehriDisplay string `json:"sehri_display"`
	IftarDisplay string `json:"iftar_display"`
}

// TimetableResponse is the resolved view for one district and date.
// Today is null when the date falls outside the 30-day window; that is
// "no data", not an error.
type TimetableResponse struct {
	Division string               `json:"division"`
	District string               `json:"district"`
	Date     string               `json:"date"`
	Today    *TodayCard           `json:"today"`
	Rows     []models.CalendarRow `json:"rows"`
}

// TodayResponse carries just the today card plus the share text.
type TodayResponse struct {
	Division  string     `json:"division"`
	District  string     `json:"district"`
	Date      string     `json:"date"`
	Today     *TodayCard `json:"today"`
	ShareText string     `json:"share_text"`
}

// ShareResponse wraps the share text for clipboard use.
type ShareResponse struct {
	Division string `json:"division"`
	District string `json:"district"`
	Date     string `json:"date"`
	Text     string `json:"text"`
}
