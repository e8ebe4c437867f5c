package cli

import (
	"fmt"

	"github.com/dkorsakov/clinickeeper/internal/models"
)

func (c *Console) listPatients() {
	if !c.requireLogin() {
		return
	}
	fmt.Fprintf(c.out, "%-14s %-24s %s\n", "NAME", "STATUS", "ROOM")
	for _, p := range models.SamplePatients() {
		fmt.Fprintf(c.out, "%-14s %-24s %s\n", p.Name, p.Status, p.Room)
	}
}

func (c *Console) listAppointments() {
	if !c.requireLogin() {
		return
	}
	fmt.Fprintf(c.out, "%-12s %-14s %-14s %-17s %s\n", "ID", "PATIENT", "CLINICIAN", "SCHEDULED", "NOTES")
	for _, a := range models.SampleAppointments() {
		fmt.Fprintf(c.out, "%-12s %-14s %-14s %-17s %s\n",
			a.ID, a.PatientName, a.Clinician, a.ScheduledAt.Format("2006-01-02 15:04"), a.Notes)
	}
}

func (c *Console) listInventory() {
	if !c.requireLogin() {
		return
	}
	fmt.Fprintf(c.out, "%-12s %-20s %8s %10s  %s\n", "SKU", "NAME", "QTY", "PRICE", "STATUS")
	for _, it := range models.SampleInventory() {
		fmt.Fprintf(c.out, "%-12s %-20s %8d %10.2f  %s\n", it.SKU, it.Name, it.Quantity, it.UnitPrice, it.Status)
	}
}
