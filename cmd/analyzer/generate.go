package main

import (
	"time"

	"codeberg.org/hitlog/analyzer/internal/config"
	"codeberg.org/hitlog/analyzer/internal/hitlog"
	"codeberg.org/hitlog/analyzer/internal/logger"
	"codeberg.org/hitlog/analyzer/internal/synth"
)

// RunGenerate writes a synthetic hitlog CSV.
func RunGenerate(flags config.GenerateFlags) error {
	seed := flags.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	events, err := synth.New(seed).Generate(synth.Options{
		Users:            flags.Users,
		Articles:         flags.Articles,
		MaxPerJourney:    flags.MaxPerJourney,
		RegistrationRate: flags.RegistrationRate,
	})
	if err != nil {
		return err
	}

	if err := hitlog.WriteFile(flags.Output, events); err != nil {
		return err
	}

	logger.Info("synthetic hitlog generated",
		"path", flags.Output,
		"users", flags.Users,
		"articles", flags.Articles,
		"events", len(events),
		"seed", seed,
	)

	return nil
}
