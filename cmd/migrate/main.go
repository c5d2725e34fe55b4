package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pawbook/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const schemaFile = "file://db/schema.sql"

func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	devURL := flag.String("dev-url", "docker://postgres/16/dev", "dev database used by atlas to diff the schema")
	flag.Parse()

	if err := run(context.Background(), *dryRun, *devURL); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dryRun bool, devURL string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:    databaseURL(cfg.DB),
		To:     schemaFile,
		DevURL: devURL,
		DryRun: dryRun,
	})
	if err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}

	if res.Changes.Error != nil {
		return fmt.Errorf("apply schema: %s: %s", res.Changes.Error.Stmt, res.Changes.Error.Text)
	}

	slog.Info("schema applied",
		"applied", len(res.Changes.Applied),
		"pending", len(res.Changes.Pending),
		"dry_run", dryRun)
	return nil
}

func databaseURL(db config.DBConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		db.User, db.Password, db.Host, db.Port, db.DBName, db.SSLMode)
}
