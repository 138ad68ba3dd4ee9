package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/quantforge-lab/freqgen/internal/generator"
	"github.com/quantforge-lab/freqgen/internal/indicator"
	"github.com/quantforge-lab/freqgen/internal/logger"
	"github.com/quantforge-lab/freqgen/internal/preset"
	"github.com/quantforge-lab/freqgen/internal/version"
	"github.com/quantforge-lab/freqgen/pkg/spec"
)

// generateAction loads a spec YAML, renders the strategy source and writes
// it next to the requested output directory as <Name>.py.
func generateAction(ctx context.Context, cmd *cli.Command) error {
	logr, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logr.Sync() }()

	specPath := cmd.String("spec")
	outputDir := cmd.String("output")

	s, err := spec.Load(specPath)
	if err != nil {
		return err
	}

	return renderToFile(logr, s, outputDir)
}

// schemaAction writes the generation-spec JSON schema, mirroring the spec
// YAML files' editor validation story.
func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schemaJSON, err := spec.ToJSONSchema()
	if err != nil {
		return fmt.Errorf("failed to generate schema: %w", err)
	}

	outputPath := cmd.String("output")
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
		return fmt.Errorf("failed to write schema to file: %w", err)
	}

	log.Printf("Schema successfully generated at %s", outputPath)

	return nil
}

// presetsAction lists built-in presets, or renders one when --name is given.
func presetsAction(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		for _, p := range preset.List() {
			fmt.Printf("%-16s %s\n", p.Name, p.Description)
		}

		return nil
	}

	p, err := preset.Get(name)
	if err != nil {
		return err
	}

	logr, err := logger.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logr.Sync() }()

	return renderToFile(logr, &p.Spec, cmd.String("output"))
}

// indicatorsAction lists every supported indicator kind.
func indicatorsAction(ctx context.Context, cmd *cli.Command) error {
	registry := indicator.NewDefaultRegistry()
	for _, name := range registry.ListIndicators() {
		fmt.Println(name)
	}

	return nil
}

func renderToFile(logr *logger.Logger, s *spec.Spec, outputDir string) error {
	source, err := generator.Render(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputPath := filepath.Join(outputDir, s.Name+".py")
	if err := os.WriteFile(outputPath, []byte(source), 0644); err != nil {
		return fmt.Errorf("failed to write strategy: %w", err)
	}

	logr.Info("strategy generated",
		zap.String("name", s.Name),
		zap.String("path", outputPath),
		zap.Int("bytes", len(source)))

	return nil
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "freqgen",
		Usage:   "Generate freqtrade strategy files from declarative specs",
		Version: version.GetVersion(),
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Render a strategy from a spec YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "spec",
						Aliases:  []string{"s"},
						Usage:    "Path to the generation spec YAML",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory the strategy file is written to",
						Value:   "strategies",
					},
				},
				Action: generateAction,
			},
			{
				Name:  "schema",
				Usage: "Write the JSON schema for generation spec files",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path of the schema file",
						Value:   filepath.Join("config", "freqgen-spec.json"),
					},
				},
				Action: schemaAction,
			},
			{
				Name:  "presets",
				Usage: "List built-in presets or render one by name",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Preset to render; omit to list all presets",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Directory the strategy file is written to",
						Value:   "strategies",
					},
				},
				Action: presetsAction,
			},
			{
				Name:   "indicators",
				Usage:  "List supported indicator kinds",
				Action: indicatorsAction,
			},
		},
	}
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
