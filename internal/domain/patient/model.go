package patient

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Patient maps to the patients table.
type Patient struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	DOB         string `db:"dob" json:"dob"` // YYYY-MM-DD
	Gender      string `db:"gender" json:"gender,omitempty"`
	ContactInfo string `db:"contact_info" json:"contact_info,omitempty"`
	Address     string `db:"address" json:"address,omitempty"`
}

// Age returns the patient's age in whole years, or false when the date of
// birth does not parse.
func (p *Patient) Age() (int, bool) {
	return ageAt(p.DOB, time.Now())
}

func ageAt(dob string, now time.Time) (int, bool) {
	born, err := time.ParseInLocation(dateLayout, dob, time.Local)
	if err != nil {
		return 0, false
	}
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, true
}

// Summary returns a short display string for lists and dropdowns. The age is
// omitted when the date of birth is unusable.
func (p *Patient) Summary() string {
	if age, ok := p.Age(); ok {
		return fmt.Sprintf("%s (%s, %d yrs)", p.Name, p.Gender, age)
	}
	return fmt.Sprintf("%s (%s)", p.Name, p.Gender)
}
