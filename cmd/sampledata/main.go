// Command sampledata generates a sample hackathon setup (team names and
// judging criteria) for a topic using the Gemini-backed generator and
// prints it as JSON. Useful for seeding an event without typing every
// team in by hand.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hackdash/hackdash/infrastructure/genai"
	"github.com/hackdash/hackdash/internal/application"
)

func main() {
	var (
		topic  = flag.String("topic", "AI for Social Good", "Hackathon theme to generate teams and criteria for")
		model  = flag.String("model", genai.DefaultModel, "Gemini model to use")
		output = flag.String("output", "", "Output file path (defaults to stdout)")
	)
	flag.Parse()

	// A missing .env file is fine; the key may come from the environment.
	_ = godotenv.Load()

	cfg := application.DefaultConfig().Generator
	cfg.Model = *model

	ctx := context.Background()
	gen, err := genai.NewGenerator(ctx, genai.Config{
		APIKey: cfg.APIKey,
		Model:  cfg.Model,
	})
	if err != nil {
		log.Fatalf("Failed to create generator: %v", err)
	}

	generator := genai.WithTracing(
		genai.WithRateLimit(
			genai.WithTimeout(gen, cfg.Timeout()),
			cfg.RequestsPerMinute,
		),
	)

	sample, err := generator.Generate(ctx, *topic)
	if err != nil {
		log.Fatalf("Failed to generate sample data: %v", err)
	}

	data, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode sample data: %v", err)
	}

	if *output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	fmt.Printf("Wrote %d groups and %d criteria to %s\n", len(sample.Groups), len(sample.Criteria), *output)
}
