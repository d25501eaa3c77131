package main

import (
	"context"
	"fmt"
	"time"

	"github.com/clinic/clinic/internal/domain/appointment"
	"github.com/clinic/clinic/internal/domain/billing"
	"github.com/clinic/clinic/internal/domain/doctor"
	"github.com/clinic/clinic/internal/domain/patient"
)

var seedNames = []string{"Alice Morgan", "Ben Carter", "Carla Diaz", "David Osei", "Elena Petrova",
	"Frank Liu", "Grace Ncube", "Hassan Ali", "Iris Novak", "Jonas Berg"}

var seedDoctors = []doctor.Doctor{
	{Name: "Meredith Shaw", Specialty: "General Practice", ContactInfo: "ext. 101"},
	{Name: "Tomas Keller", Specialty: "Cardiology", ContactInfo: "ext. 102"},
	{Name: "Priya Raman", Specialty: "Pediatrics", ContactInfo: "ext. 103"},
}

// seed creates a small demo dataset through the service layer so the same
// validation the UI hits applies here. Appointments are placed a week out;
// every other patient also gets a month-old unpaid billing so the overdue
// report has something to show.
func seed(ctx context.Context, a *app, patients int) error {
	if patients > len(seedNames) {
		patients = len(seedNames)
	}

	var doctorIDs []int64
	for i := range seedDoctors {
		d := seedDoctors[i]
		if err := a.doctors.Add(ctx, &d); err != nil {
			return fmt.Errorf("seed doctor %q: %w", d.Name, err)
		}
		doctorIDs = append(doctorIDs, d.ID)
	}

	now := time.Now()
	apptDate := now.AddDate(0, 0, 7).Format("2006-01-02")
	overdueDate := now.AddDate(0, -1, 0).Format("2006-01-02")

	for i := 0; i < patients; i++ {
		p := patient.Patient{
			Name:        seedNames[i],
			DOB:         fmt.Sprintf("%d-04-%02d", 1950+i*7, 1+i),
			Gender:      []string{"Female", "Male"}[i%2],
			ContactInfo: fmt.Sprintf("555-01%02d", i),
			Address:     fmt.Sprintf("%d Main St", 100+i),
		}
		if err := a.patients.Add(ctx, &p); err != nil {
			return fmt.Errorf("seed patient %q: %w", p.Name, err)
		}

		appt := appointment.Appointment{
			PatientID: p.ID,
			DoctorID:  doctorIDs[i%len(doctorIDs)],
			Date:      apptDate,
			Time:      fmt.Sprintf("%02d:30", 9+i%6),
			Reason:    "Routine checkup",
		}
		if err := a.appointments.Add(ctx, &appt); err != nil {
			return fmt.Errorf("seed appointment for %q: %w", p.Name, err)
		}

		b := billing.Billing{
			PatientID:        p.ID,
			AppointmentID:    &appt.ID,
			Amount:           75 + float64(i)*12.50,
			ServicesRendered: "Consultation",
		}
		if i%2 == 1 {
			b.Date = overdueDate
		}
		if err := a.billings.Add(ctx, &b); err != nil {
			return fmt.Errorf("seed billing for %q: %w", p.Name, err)
		}
	}
	return nil
}
