package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing secret is checked here because its absence is an
// operational fault: the process must refuse to start rather than issue or
// accept unverifiable tokens.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.App.PasswordHashKey == "" {
		return ErrMissingPasswordHashKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDSN
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrMissingServerAddress
	}

	return nil
}
