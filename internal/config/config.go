// Package config loads the resolver's runtime configuration from
// environment variables and command-line flags, falling back to
// compile-time defaults.
package config

import (
	"flag"
	"os"
)

const (
	DefaultUpstream = "8.8.8.8:53"
	DefaultBindAddr = "0.0.0.0:53"
	DefaultZoneFile = "bind.txt"
)

// Config holds every value the resolver needs to start.
type Config struct {
	Upstream string
	BindAddr string
	ZoneFile string

	AdminAddr string // empty disables the admin API
	AdminDB   string
}

// Load reads environment variables, then flags (which take precedence),
// then applies hardcoded defaults for anything still unset.
func Load(args []string) (Config, error) {
	cfg := Config{
		Upstream:  firstNonEmpty(os.Getenv("UPSTREAM"), DefaultUpstream),
		BindAddr:  firstNonEmpty(os.Getenv("BIND_ADDR"), DefaultBindAddr),
		ZoneFile:  firstNonEmpty(os.Getenv("ZONE_FILE"), DefaultZoneFile),
		AdminAddr: os.Getenv("ADMIN_ADDR"),
		AdminDB:   firstNonEmpty(os.Getenv("ADMIN_DB"), "cacheresolver-admin.db"),
	}

	fs := flag.NewFlagSet("cacheresolver", flag.ContinueOnError)
	upstream := fs.String("upstream", cfg.Upstream, "upstream recursive resolver address")
	bindAddr := fs.String("bind", cfg.BindAddr, "UDP listen address")
	zoneFile := fs.String("zone", cfg.ZoneFile, "local zone file path")
	adminAddr := fs.String("admin-addr", cfg.AdminAddr, "admin API listen address, empty disables it")
	adminDB := fs.String("admin-db", cfg.AdminDB, "admin audit store sqlite path")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg.Upstream = *upstream
	cfg.BindAddr = *bindAddr
	cfg.ZoneFile = *zoneFile
	cfg.AdminAddr = *adminAddr
	cfg.AdminDB = *adminDB
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
