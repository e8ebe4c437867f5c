package config

import (
	"flag"
	"os"

	"github.com/dkorsakov/clinickeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   storage directory for the local database
//	-d string   database DSN (postgres:// switches to the shared backend)
//	-e string   directory for CSV exports
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDir, "s", cfg.StorageDir, "storage directory for the local database")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.ExportDir, "e", cfg.ExportDir, "directory for CSV exports")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
