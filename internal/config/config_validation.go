package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrNoDatabaseDSN
	}

	if cfg.App.GroupDeletePolicy != GroupDeleteDetach && cfg.App.GroupDeletePolicy != GroupDeleteCascade {
		return ErrInvalidGroupDeletePolicy
	}

	if cfg.App.SessionDuration <= 0 {
		return ErrInvalidSessionDuration
	}

	return nil
}
