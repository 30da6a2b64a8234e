package models

// DayRecord is one calendar day within Ramadan for one district.
// Date uses the canonical YYYY-MM-DD form and is unique within a
// district's list; RamadanDay is the 1-based ordinal of the fast.
type DayRecord struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	RamadanDay int    `json:"ramadanDay" validate:"required,min=1,max=30"`
	SehriEnd   string `json:"sehriEnd" validate:"required,datetime=15:04"`
	Iftar      string `json:"iftar" validate:"required,datetime=15:04"`
}

// District owns the per-day records for one district. Records are never
// shared across districts.
type District struct {
	Name  string      `json:"name" validate:"required"`
	Times []DayRecord `json:"times" validate:"dive"`
}

// Division groups districts under one administrative region.
type Division struct {
	Name      string     `json:"name" validate:"required"`
	Districts []District `json:"districts" validate:"dive"`
}

// ScheduleDataset is the dataset root. Loaded once at startup and treated
// as immutable for the lifetime of the process.
type ScheduleDataset struct {
	Divisions []Division `json:"divisions" validate:"dive"`
}

// Selection carries the user-chosen division and district names. Empty
// strings are valid "unset" sentinels.
type Selection struct {
	Division string
	District string
}

// CalendarRow is one display row of the 30-day calendar.
type CalendarRow struct {
	RamadanDay   int    `json:"ramadan_day"`
	Date         string `json:"date"`
	DateLabel    string `json:"date_label"`
	Weekday      string `json:"weekday"`
	SehriDisplay string `json:"sehri_display"`
	IftarDisplay string `json:"iftar_display"`
	IsToday      bool   `json:"is_today"`
}
