// Command zimport decrypts an encrypted Zalo backup container, extracts
// it next to the container file and imports its conversation and message
// logs into an initialized DHT viewer database.
//
// Usage:
//
//	zimport -f backup.zaloenc -d dht.db [-i Index.db] [-p passphrase]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/j1nxie/app-z-to-dht/internal/backup"
	"github.com/j1nxie/app-z-to-dht/internal/cli"
	"github.com/j1nxie/app-z-to-dht/internal/config"
	"github.com/j1nxie/app-z-to-dht/internal/importer"
	"github.com/j1nxie/app-z-to-dht/internal/logging"
	"github.com/j1nxie/app-z-to-dht/internal/resolver"
	"github.com/j1nxie/app-z-to-dht/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	if cfg.BackupPath == "" {
		return fmt.Errorf("no backup file given, use -f")
	}

	log := logging.NewSlogLogger(
		slog.New(slog.NewTextHandler(os.Stderr, nil)),
	).With("run", uuid.NewString())

	ctx := context.Background()

	passphrase := []byte(cfg.Passphrase)
	if len(passphrase) == 0 {
		var err error
		passphrase, err = cli.GetPassphrase(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read passphrase: %w", err)
		}
	}

	log.Info(ctx, "extracting backup", "container", cfg.BackupPath)
	account, root, err := backup.ExtractBackup(passphrase, cfg.BackupPath)
	if err != nil {
		return err
	}
	log.Info(ctx, "backup extracted", "account", account, "dir", root)

	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	var res resolver.Resolver = resolver.Noop{}
	if cfg.IndexPath != "" {
		idx, err := resolver.OpenIndex(passphrase, cfg.IndexPath)
		if err != nil {
			return err
		}
		defer idx.Close()
		res = idx
	}

	return importer.New(db, res, log).Run(ctx, root, account)
}
