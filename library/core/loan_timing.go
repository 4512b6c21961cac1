package core

import (
	"time"
)

// DueWarningDays is how many days before the planned return date an active loan is flagged.
const DueWarningDays = 3

// ReturnTiming classifies a return against the planned return date. It is only used for messaging.
type ReturnTiming string

const (
	ReturnedEarly  ReturnTiming = "Early"
	ReturnedOnTime ReturnTiming = "OnTime"
	ReturnedLate   ReturnTiming = "Late"
)

// ReturnClassification is the timing of a return and the number of days it was early or late.
type ReturnClassification struct {
	Timing ReturnTiming
	Days   int
}

// ClassifyReturn compares the calendar days of returnDate and plannedReturnDate.
func ClassifyReturn(plannedReturnDate, returnDate time.Time) ReturnClassification {
	diff := DaysBetween(plannedReturnDate, returnDate)

	switch {
	case diff < 0:
		return ReturnClassification{Timing: ReturnedEarly, Days: -diff}
	case diff > 0:
		return ReturnClassification{Timing: ReturnedLate, Days: diff}
	default:
		return ReturnClassification{Timing: ReturnedOnTime}
	}
}

// IsOnTime is the persisted on-time flag: the return happened on or before the planned return date.
func IsOnTime(plannedReturnDate, returnDate time.Time) bool {
	return !ToDate(returnDate).After(ToDate(plannedReturnDate))
}

// DueStatus classifies an active loan relative to the current time.
type DueStatus string

const (
	DueOnTrack DueStatus = "OnTrack"
	DueWarning DueStatus = "Warning"
	DueOverdue DueStatus = "Overdue"
)

// DueClassification is the due status of an active loan and the calendar days left until the
// planned return date, negative when overdue.
type DueClassification struct {
	Status   DueStatus
	DaysLeft int
}

// ClassifyDue classifies an active loan: Overdue once now is past the planned return date,
// so a loan due today is overdue from midnight on, Warning within DueWarningDays of it, else OnTrack.
// DaysLeft counts calendar days.
func ClassifyDue(plannedReturnDate, now time.Time) DueClassification {
	daysLeft := DaysBetween(now, plannedReturnDate)

	switch {
	case plannedReturnDate.Before(now):
		return DueClassification{Status: DueOverdue, DaysLeft: daysLeft}
	case daysLeft <= DueWarningDays:
		return DueClassification{Status: DueWarning, DaysLeft: daysLeft}
	default:
		return DueClassification{Status: DueOnTrack, DaysLeft: daysLeft}
	}
}
