package main

import (
	"fmt"
	"os"

	"codeberg.org/hitlog/analyzer/internal/config"
	"codeberg.org/hitlog/analyzer/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: analyzer <command> [options]")
		fmt.Println("Commands:")
		fmt.Println("  analyze   - rank article influence from a hitlog CSV")
		fmt.Println("  generate  - generate a synthetic hitlog CSV")
		fmt.Println("\nOptions (analyze):")
		fmt.Println("  --input <path>    - hitlog CSV to analyze")
		fmt.Println("  --policy <name>   - attribution policy (count, first_touch, last_touch, linear, position_based, time_decay)")
		fmt.Println("  --top <n>         - number of top articles to report")
		fmt.Println("  --output <path>   - exported result CSV (empty to skip)")
		fmt.Println("\nOptions (generate):")
		fmt.Println("  --output <path>   - where to write the hitlog")
		fmt.Println("  --users <n> --articles <n> --max-journey <n> --rate <p> --seed <n>")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "analyze":
		flags := config.ParseAnalyzeFlags()
		if err := RunAnalyze(flags); err != nil {
			logger.Fatal("analysis failed", "error", err)
		}

	case "generate":
		flags := config.ParseGenerateFlags()
		if err := RunGenerate(flags); err != nil {
			logger.Fatal("generation failed", "error", err)
		}

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}
