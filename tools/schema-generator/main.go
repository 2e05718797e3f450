package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/docnav/config"
	"github.com/grovetools/docnav/schema"
)

func main() {
	navSchema, err := schema.GenerateNavDocument()
	if err != nil {
		log.Fatalf("Error generating navigation schema: %v", err)
	}

	configSchema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating config schema: %v", err)
	}

	// Define the output directory and ensure it exists.
	outputDir := "schema/definitions"
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error creating schema directory: %v", err)
	}

	outputs := map[string][]byte{
		"nav.schema.json":    navSchema,
		"docnav.schema.json": configSchema,
	}
	for name, data := range outputs {
		outputPath := filepath.Join(outputDir, name)
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			log.Fatalf("Error writing schema file: %v", err)
		}
		log.Printf("Successfully generated schema at %s", outputPath)
	}
}
