package doctor

import "testing"

func TestDisplayName(t *testing.T) {
	d := Doctor{Name: "Meredith Shaw", Specialty: "Cardiology"}
	if got := d.DisplayName(); got != "Dr. Meredith Shaw (Cardiology)" {
		t.Errorf("DisplayName() = %q, want %q", got, "Dr. Meredith Shaw (Cardiology)")
	}
}
