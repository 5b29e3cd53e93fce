package config

import "errors"

func ValidateForRun(cfg *Config) error {
	var errs []error

	if err := cfg.Database.Validate(); err != nil {
		errs = append(errs, err)
	}

	if !cfg.Match.SnapshotsDisabled {
		if err := cfg.Redis.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
