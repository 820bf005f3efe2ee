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
	"github.com/damigrowth/migrator/internal/platform/envutil"
)

const usage = `usage: migrate-services <command> [flags]

commands:
  run        migrate legacy services into the target store (default)
  rollback   delete migrated services
  test <id>  print one migrated service by legacy id
  analyze    print aggregate counts over migrated services

run flags:
  -update-existing   also update services that already exist
  -create-only       never touch existing services (the default)
  -limit N           process at most N legacy services
  -json              emit the report as JSON
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
	case "test":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "test requires a legacy service id")
			os.Exit(2)
		}
		os.Exit(runTest(ctx, args[0]))
	case "analyze":
		os.Exit(runAnalyze(ctx))
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runForward(ctx context.Context, args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	updateExisting := fs.Bool("update-existing", false, "update services that already exist")
	createOnly := fs.Bool("create-only", false, "never touch existing services (the default)")
	limit := fs.Int("limit", 0, "process at most N legacy services")
	asJSON := fs.Bool("json", false, "emit the report as JSON")
	fs.Parse(args)
	if *createOnly && *updateExisting {
		fmt.Fprintln(os.Stderr, "-create-only and -update-existing are mutually exclusive")
		return 2
	}

	application, err := app.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	defer application.Close()

	runner := migrate.NewServiceRunner(migrate.ServiceDeps{
		Services:       application.SourceRepos.Services,
		Taxonomies:     application.SourceRepos.Taxonomies,
		Media:          application.SourceRepos.Media,
		Reviews:        application.SourceRepos.Reviews,
		TargetProfiles: application.TargetRepos.Profiles,
		TargetServices: application.TargetRepos.Services,
		TargetUsers:    application.TargetRepos.Users,
		Tx:             application.Tx,
		Log:            application.Log,
	}, migrate.Options{
		UpdateExisting: *updateExisting,
		Rounding:       migrate.ParseRoundingMode(envutil.String("RATING_ROUNDING", "")),
		Limit:          *limit,
	})

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
	deleted, err := rb.RollbackServices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rollback: %v\n", err)
		return 1
	}
	fmt.Printf("deleted %d services\n", deleted)
	return 0
}

func runTest(ctx context.Context, key string) int {
	application, err := app.NewTargetOnly()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	defer application.Close()

	row, err := newInspector(application).ServiceByKey(ctx, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return printValue(row)
}

func runAnalyze(ctx context.Context) int {
	application, err := app.NewTargetOnly()
	if err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		return 1
	}
	defer application.Close()

	stats, err := newInspector(application).AnalyzeServices(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		return 1
	}
	return printValue(stats)
}

func newInspector(application *app.App) *migrate.Inspector {
	return migrate.NewInspector(
		application.TargetRepos.Users,
		application.TargetRepos.Profiles,
		application.TargetRepos.Services,
		application.TargetRepos.Taxonomy,
		application.Log,
	)
}

func printValue(v any) int {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}
	return 0
}
