package models

import "time"

// PatientRecord is one row of the ward board.
type PatientRecord struct {
	Name   string
	Status string
	Room   string
}

// Appointment is one scheduled visit.
type Appointment struct {
	ID          string
	PatientName string
	Clinician   string
	ScheduledAt time.Time
	Notes       string
}

// InventoryItem is one stock position of the clinic supply room.
type InventoryItem struct {
	SKU       string
	Name      string
	Quantity  int
	UnitPrice float64
	Status    string
}

// SamplePatients returns the demo ward board. The console works on a copy,
// nothing here is persisted.
func SamplePatients() []PatientRecord {
	return []PatientRecord{
		{Name: "Mara Vega", Status: "Stable - Monitoring", Room: "Room 112"},
		{Name: "Hector Liao", Status: "Critical - Ventilated", Room: "Room 204"},
		{Name: "Priya Sen", Status: "Recovery - Physical", Room: "Room 305"},
		{Name: "Elena Brooks", Status: "Observation - Neonatal", Room: "Room 118"},
		{Name: "Ravi Patel", Status: "Pre-op - Clearing", Room: "Room 402"},
	}
}

// SampleInventory returns the demo stock list.
func SampleInventory() []InventoryItem {
	return []InventoryItem{
		{SKU: "INV-420115", Name: "Surgical Masks", Quantity: 320, UnitPrice: 0.35, Status: "Healthy"},
		{SKU: "INV-420116", Name: "Intravenous Sets", Quantity: 78, UnitPrice: 4.80, Status: "Reorder soon"},
		{SKU: "INV-420117", Name: "Standard Syringes", Quantity: 610, UnitPrice: 0.85, Status: "Healthy"},
		{SKU: "INV-420118", Name: "Isolation Gowns", Quantity: 42, UnitPrice: 6.25, Status: "Critical"},
		{SKU: "INV-420119", Name: "Defibrillator Pads", Quantity: 6, UnitPrice: 12.00, Status: "Critical"},
	}
}

// SampleAppointments returns the demo schedule, relative to now.
func SampleAppointments() []Appointment {
	now := time.Now()
	return []Appointment{
		{ID: "APT-301100", PatientName: "Mara Vega", Clinician: "Dr. Carter", ScheduledAt: now.Add(3 * time.Hour), Notes: "Post-op check"},
		{ID: "APT-301101", PatientName: "Hector Liao", Clinician: "Nurse Samuels", ScheduledAt: now.Add(6 * time.Hour), Notes: "Ventilator check"},
		{ID: "APT-301102", PatientName: "Priya Sen", Clinician: "Dr. Ortega", ScheduledAt: now.Add(24 * time.Hour), Notes: "Therapy consult"},
	}
}
