package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/damigrowth/migrator/internal/app"
	"github.com/damigrowth/migrator/internal/migrate"
)

const usage = `usage: migrate-taxonomies <command> [flags]

commands:
  run        copy the legacy taxonomy tables into the target store (default)
  rollback   delete migrated taxonomy rows
  analyze    print per-kind row counts in the target store

Every run upserts: existing rows are refreshed in place, so there is
no update-existing flag here.

run flags:
  -preview   report counts without writing anything
  -json      emit the report as JSON
`

func main() {
	cmd, args := "run", os.Args[1:]
	if len(os.Args) > 1 && !strings.HasPrefix(os.Args[1], "-") {
		cmd, args = os.Args[1], os.Args[2:]
	}
	ctx := context.Background()

	switch cmd {
	case "run":
		os.Exit(runForward(ctx, args))
	case "rollback":
		os.Exit(runRollback(ctx))
	case "analyze":
		os.Exit(runAnalyze(ctx))
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runForward(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	preview := fs.Bool("preview", false, "report counts without writing anything")
	asJSON := fs.Bool("json", false, "emit the report as JSON")
	fs.Parse(args)

	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	defer application.Close()

	runner := migrate.NewTaxonomyRunner(migrate.TaxonomyDeps{
		Tables: application.SourceRepos.Tables,
		Target: application.TargetRepos.Taxonomy,
		Tx:     application.Tx,
		Log:    application.Log,
	}, *preview)

	report, err := runner.Run(ctx)
	if err != nil {
		application.Log.Error("run aborted", "error", err)
	}
	if *asJSON {
		report.PrintJSON(os.Stdout)
	} else {
		report.Print(os.Stdout)
	}
	if err != nil {
		return 1
	}
	return report.ExitCode()
}

func runRollback(ctx context.Context) int {
	application, err := app.NewTargetOnly()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	defer application.Close()

	rb := migrate.NewRollbacker(
		application.Tx,
		application.TargetRepos.Users,
		application.TargetRepos.Profiles,
		application.TargetRepos.Services,
		application.TargetRepos.Taxonomy,
		application.Log,
	)
	deleted, err := rb.RollbackTaxonomies(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rollback: %v\n", err)
		return 1
	}
	fmt.Printf("deleted %d taxonomy rows\n", deleted)
	return 0
}

func runAnalyze(ctx context.Context) int {
	application, err := app.NewTargetOnly()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	defer application.Close()

	insp := migrate.NewInspector(
		application.TargetRepos.Users,
		application.TargetRepos.Profiles,
		application.TargetRepos.Services,
		application.TargetRepos.Taxonomy,
		application.Log,
	)
	stats, err := insp.AnalyzeTaxonomies(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		return 1
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stats); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	return 0
}
