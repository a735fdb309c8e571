package config

import (
	"flag"
	"os"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   path to the encrypted backup file
//	-d string   path to the DHT database file (default from Config)
//	-i string   path to the Zalo Index.db file for name resolution
//	-p string   backup passphrase (prompted when omitted)
func parseFlags(cfg *Config) {
	fs := flag.NewFlagSet("zimport", flag.ExitOnError)

	fs.StringVar(&cfg.BackupPath, "f", cfg.BackupPath, "path to the encrypted Zalo backup file")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the DHT database file")
	fs.StringVar(&cfg.IndexPath, "i", cfg.IndexPath, "path to the Zalo Index.db file for populating user and group names")
	fs.StringVar(&cfg.Passphrase, "p", cfg.Passphrase, "backup passphrase (prompted when omitted)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}
}
