package appointment

import "time"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Status is the closed set of appointment states. No transition graph is
// enforced: any status may be replaced by any other through an update.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Appointment maps to the appointments table. PatientID and DoctorID are
// plain foreign ids; nothing guarantees the referenced rows still exist.
type Appointment struct {
	ID        int64  `db:"id" json:"id"`
	PatientID int64  `db:"patient_id" json:"patient_id"`
	DoctorID  int64  `db:"doctor_id" json:"doctor_id"`
	Date      string `db:"date" json:"date"` // YYYY-MM-DD
	Time      string `db:"time" json:"time"` // HH:MM, 24-hour
	Reason    string `db:"reason" json:"reason,omitempty"`
	Status    Status `db:"status" json:"status"`
}

// DateTime combines the date and time fields, or returns false when either
// does not parse.
func (a *Appointment) DateTime() (time.Time, bool) {
	dt, err := time.ParseInLocation(dateTimeLayout, a.Date+" "+a.Time, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return dt, true
}

// InPast reports whether the appointment is scheduled strictly before now.
// An unparseable date or time is never considered past.
func (a *Appointment) InPast() bool {
	return a.inPastAt(time.Now())
}

func (a *Appointment) inPastAt(now time.Time) bool {
	dt, ok := a.DateTime()
	return ok && dt.Before(now)
}
