package cli

import (
	"context"
	"fmt"

	"github.com/dkorsakov/clinickeeper/internal/export"
	"github.com/dkorsakov/clinickeeper/internal/models"
)

func (c *Console) export(ctx context.Context, args []string) {
	if !c.requireLogin() {
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: export <users|patients|status|inventory>")
		return
	}

	var (
		path string
		err  error
	)
	switch args[0] {
	case "users":
		var all []*models.AppUser
		all, err = c.repo.FindAll(ctx)
		if err == nil {
			path, err = export.ExportUsers(c.exportDir, all)
		}
	case "patients":
		path, err = export.ExportPatients(c.exportDir, models.SamplePatients())
	case "status":
		path, err = export.ExportStatusSnapshot(c.exportDir, models.SamplePatients())
	case "inventory":
		path, err = export.ExportInventory(c.exportDir, models.SampleInventory())
	default:
		fmt.Fprintf(c.out, "Unknown export target: %s\n", args[0])
		return
	}

	if err != nil {
		c.logger.Error(ctx, "export failed", "target", args[0], "error", err)
		fmt.Fprintln(c.out, "Export failed.")
		return
	}
	fmt.Fprintf(c.out, "Data exported to %s\n", path)
}
