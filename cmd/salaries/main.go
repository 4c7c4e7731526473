package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/preston-bernstein/nba-dfs-data/internal/config"
	"github.com/preston-bernstein/nba-dfs-data/internal/domain/salaries"
	"github.com/preston-bernstein/nba-dfs-data/internal/export"
	"github.com/preston-bernstein/nba-dfs-data/internal/logging"
	"github.com/preston-bernstein/nba-dfs-data/internal/salary"
)

const appVersion = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "salaries:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		inPath     string
		vendorName string
		outDir     string
		outFormat  string
	)
	flag.StringVar(&inPath, "in", "", "path to the vendor salary CSV export")
	flag.StringVar(&vendorName, "vendor", "", "force a vendor (draftkings or fanduel) instead of auto-detecting")
	flag.StringVar(&outDir, "out", "", "output directory (overrides OUTPUT_DIR)")
	flag.StringVar(&outFormat, "format", "", "output format: csv or json (overrides OUTPUT_FORMAT)")
	flag.Parse()

	if inPath == "" {
		return errors.New("--in is required")
	}

	cfg := config.Load()
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if outFormat != "" {
		cfg.Output.Format = outFormat
	}
	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "nba-dfs-data",
		Version: appVersion,
	})

	rows, err := loadRows(inPath, vendorName)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logging.Warn(logger, "salary file contained no rows", logging.FieldPath, inPath)
	}

	vendor := salaries.Vendor(vendorName)
	if len(rows) > 0 {
		vendor = rows[0].Vendor
	}
	path := export.SalaryPath(cfg.Output.Dir, vendor, format)
	if err := export.WriteSalaries(path, format, rows); err != nil {
		return err
	}
	logging.Info(logger, "wrote normalized salaries",
		logging.FieldVendor, string(vendor),
		logging.FieldPath, path,
		logging.FieldCount, len(rows))
	return nil
}

func loadRows(path, vendorName string) ([]salaries.SalaryRow, error) {
	switch vendorName {
	case "":
		return salary.LoadSalaryFile(path)
	case string(salaries.DraftKings):
		return salary.LoadDraftKings(path)
	case string(salaries.FanDuel):
		return salary.LoadFanDuel(path)
	default:
		return nil, fmt.Errorf("unknown vendor %q", vendorName)
	}
}
