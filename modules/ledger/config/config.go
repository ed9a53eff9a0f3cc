package config

import (
	"github.com/heroarena/ledger/internal/postgres"
)

type Config struct {
	// Database backend for the ledger state. Possible values:
	//  - memory (default)
	//  - postgres
	Database string `mapstructure:"database"`

	Postgres postgres.Config `mapstructure:"postgres"`

	// APIHandlers to mount. Currently only "http" is supported.
	APIHandlers []string `mapstructure:"api_handlers"`

	// BootstrapAdmin is the account seeded as the admin capability holder on
	// first start. Ignored once a holder exists.
	BootstrapAdmin string `mapstructure:"bootstrap_admin"`
}
