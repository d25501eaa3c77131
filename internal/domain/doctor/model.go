package doctor

import "fmt"

// Doctor maps to the doctors table.
type Doctor struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Specialty   string `db:"specialty" json:"specialty,omitempty"`
	ContactInfo string `db:"contact_info" json:"contact_info,omitempty"`
}

// DisplayName returns the form used in dropdowns and listings.
func (d *Doctor) DisplayName() string {
	return fmt.Sprintf("Dr. %s (%s)", d.Name, d.Specialty)
}
