// Package export writes the dashboard's CSV reports: the account roster,
// the ward board and a timestamped status snapshot.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/dkorsakov/clinickeeper/internal/models"
)

// now is a test seam for export timestamps.
var now = time.Now

const timestampLayout = "20060102150405"

// ExportUsers writes the account roster to users-<timestamp>.csv under dir
// and returns the written path. Only the derived hash is exported, never a
// plaintext.
func ExportUsers(dir string, accounts []*models.AppUser) (string, error) {
	rows := make([][]string, 0, len(accounts)+1)
	rows = append(rows, []string{"Username", "Role", "PasswordHash"})
	for _, u := range accounts {
		rows = append(rows, []string{u.Username(), u.Role(), u.PasswordHash()})
	}
	return writeCSV(dir, "users", rows)
}

// ExportPatients writes the ward board to patients-<timestamp>.csv under dir.
func ExportPatients(dir string, patients []models.PatientRecord) (string, error) {
	rows := make([][]string, 0, len(patients)+1)
	rows = append(rows, []string{"Name", "Status", "Room"})
	for _, p := range patients {
		rows = append(rows, []string{p.Name, p.Status, p.Room})
	}
	return writeCSV(dir, "patients", rows)
}

// ExportStatusSnapshot writes the ward board stamped with the capture time
// to status-<timestamp>.csv under dir.
func ExportStatusSnapshot(dir string, patients []models.PatientRecord) (string, error) {
	captured := now()
	rows := make([][]string, 0, len(patients)+1)
	rows = append(rows, []string{"Name", "Status", "Room", "CapturedAt"})
	for _, p := range patients {
		rows = append(rows, []string{p.Name, p.Status, p.Room, captured.Format(time.RFC3339)})
	}
	return writeCSV(dir, "status", rows)
}

// ExportInventory writes the stock list to inventory-<timestamp>.csv under dir.
func ExportInventory(dir string, items []models.InventoryItem) (string, error) {
	rows := make([][]string, 0, len(items)+1)
	rows = append(rows, []string{"SKU", "Name", "Quantity", "UnitPrice", "Status"})
	for _, it := range items {
		rows = append(rows, []string{
			it.SKU,
			it.Name,
			strconv.Itoa(it.Quantity),
			strconv.FormatFloat(it.UnitPrice, 'f', 2, 64),
			it.Status,
		})
	}
	return writeCSV(dir, "inventory", rows)
}

func writeCSV(dir, prefix string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare export dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.csv", prefix, now().Format(timestampLayout)))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to finish export file: %w", err)
	}
	return path, nil
}
