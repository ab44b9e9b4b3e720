package config

import (
	"flag"
	"os"
)

// parses CLI flags for the analyze subcommand
func ParseAnalyzeFlags() AnalyzeFlags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	input := fs.String("input", "synthetic_hitlog.csv", "path to the hitlog CSV")
	policy := fs.String("policy", "count", "attribution policy")
	top := fs.Int("top", 3, "number of top articles to report")
	output := fs.String("output", "influential_articles.csv", "path for the exported result CSV (empty to skip export)")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return AnalyzeFlags{Input: *input, Policy: *policy, Top: *top, Output: *output}
}

// parses CLI flags for the generate subcommand
func ParseGenerateFlags() GenerateFlags {
	args := os.Args[2:]

	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	output := fs.String("output", "synthetic_hitlog.csv", "path for the generated hitlog CSV")
	users := fs.Int("users", 1000, "number of users to generate")
	articles := fs.Int("articles", 50, "number of distinct articles")
	maxPerJourney := fs.Int("max-journey", 5, "maximum articles per user journey")
	rate := fs.Float64("rate", 0.3, "probability that a user registers")
	seed := fs.Int64("seed", 0, "random seed (0 uses the current time)")
	fs.Parse(args) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return GenerateFlags{
		Output:           *output,
		Users:            *users,
		Articles:         *articles,
		MaxPerJourney:    *maxPerJourney,
		RegistrationRate: *rate,
		Seed:             *seed,
	}
}

// returns default flags for the analyze subcommand
func DefaultAnalyzeFlags() AnalyzeFlags {
	return AnalyzeFlags{Input: "synthetic_hitlog.csv", Policy: "count", Top: 3, Output: "influential_articles.csv"}
}

// returns default flags for the generate subcommand
func DefaultGenerateFlags() GenerateFlags {
	return GenerateFlags{Output: "synthetic_hitlog.csv", Users: 1000, Articles: 50, MaxPerJourney: 5, RegistrationRate: 0.3}
}
