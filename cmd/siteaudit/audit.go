package main

// audit.go — The audit driver: inventory → checks → report → exit status.

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"siteaudit/internal/budget"
	"siteaudit/internal/check"
	"siteaudit/internal/inventory"
	"siteaudit/internal/logging"
	"siteaudit/internal/report"
)

func runAudit(args []string) error {
	fs := flag.NewFlagSet("audit", flag.ContinueOnError)
	dir := fs.String("dir", "dist", "build output directory to audit")
	configPath := fs.String("config", "siteaudit.yaml", "budget config file")
	verbose := fs.Bool("v", false, "verbose diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log, err := logging.New(*verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	budgets, err := budget.Load(*configPath)
	if err != nil {
		return err
	}

	// The previous run's report never audits itself.
	excludes := append([]string{report.Filename}, budgets.Excludes...)
	inv, err := inventory.Build(*dir, excludes)
	if err != nil {
		if errors.Is(err, inventory.ErrMissingBuildOutput) {
			return fmt.Errorf("%w — run your site build first", err)
		}
		return err
	}
	log.Debug("inventory built",
		zap.String("root", inv.Root),
		zap.Int("files", len(inv.Artifacts)),
		zap.Int64("bytes", inv.TotalSize()),
		zap.Int("walkWarnings", len(inv.Warnings)))

	sections, violations := check.RunAll(check.Defaults(), inv, budgets)

	// Walk problems surface like any other finding: nothing detected is
	// ever dropped from the console or the persisted report.
	if len(inv.Warnings) > 0 {
		walk := check.Section{CheckID: "walk"}
		for _, w := range inv.Warnings {
			v := check.Violation{RuleID: "walk", Message: w, Severity: check.SeverityWarning}
			walk.Violations = append(walk.Violations, v)
			violations = append(violations, v)
		}
		sections = append([]check.Section{walk}, sections...)
	}

	r := report.Assemble(inv, violations)
	report.Render(os.Stdout, r, sections)

	if err := report.Write(r, *dir); err != nil {
		log.Error("report not persisted", zap.Error(err))
		return err
	}

	if !r.Pass() {
		return errAuditFailed
	}
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	configPath := fs.String("config", "siteaudit.yaml", "where to write the config")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := budget.WriteDefault(*configPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", *configPath)
	return nil
}
