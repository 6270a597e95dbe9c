package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
	StatusOffer     Status = "offer"
)

// Statuses lists every status in pipeline order. The seed weights are indexed by it.
var Statuses = []Status{StatusSaved, StatusApplied, StatusInterview, StatusRejected, StatusOffer}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Company  string  `gorm:"size:200;not null;index:idx_company" json:"company"`
	Role     string  `gorm:"size:200;not null;index:idx_role" json:"role"`
	Location *string `gorm:"size:200" json:"location"`
	URL      *string `gorm:"column:url;size:500" json:"url"`
	Status   Status  `gorm:"size:50;not null;index:idx_status" json:"status"`

	DateApplied    datatypes.Date  `gorm:"not null;index:idx_date_applied" json:"date_applied"`
	NextActionDate *datatypes.Date `gorm:"index:idx_next_action_date" json:"next_action_date"`
	Notes          *string         `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	// Soft delete marker. gorm scopes queries to rows where it is NULL unless Unscoped.
	DeletedAt gorm.DeletedAt `gorm:"index:idx_deleted_at" json:"deleted_at"`
}

// DateOf returns the calendar day of t as a date stored at UTC midnight.
func DateOf(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses a YYYY-MM-DD string into a date.
func ParseDate(s string) (datatypes.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// FormatDate renders a stored date as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).UTC().Format(DateLayout)
}

// SameDay reports whether two dates fall on the same calendar day.
func SameDay(a, b datatypes.Date) bool {
	return FormatDate(a) == FormatDate(b)
}
