package config

type Config struct {
	Environment string
	Port        string
	RateLimit   string
}

// AnalyzeFlags are the CLI options for the analyze subcommand.
type AnalyzeFlags struct {
	Input  string
	Policy string
	Top    int
	Output string
}

// GenerateFlags are the CLI options for the generate subcommand.
type GenerateFlags struct {
	Output           string
	Users            int
	Articles         int
	MaxPerJourney    int
	RegistrationRate float64
	Seed             int64
}
