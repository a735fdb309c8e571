// Package config carries the runtime settings of the zimport CLI.
package config

// Config holds runtime settings for a single import run.
//
// Fields:
//   - BackupPath: path to the encrypted Zalo backup container.
//   - DatabasePath: path to the DHT viewer database the logs go into.
//   - IndexPath: optional path to the Zalo Index.db contacts database
//     used for display-name resolution. Empty disables resolution.
//   - Passphrase: backup passphrase; prompted for on the terminal when
//     left empty so it does not end up in shell history.
type Config struct {
	BackupPath   string
	DatabasePath string
	IndexPath    string
	Passphrase   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "dht.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)
	return cfg
}
