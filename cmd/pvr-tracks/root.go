package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saegey/pvr-tools/config"
	"github.com/saegey/pvr-tools/internal/jsonval"
	"github.com/saegey/pvr-tools/internal/tracklist"
)

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		input      string
		output     string
		formatName string
		fieldList  string
		allFields  bool
		yamlRoot   string
	)

	cmd := &cobra.Command{
		Use:   "pvr-tracks -i <episode.json>",
		Short: "Export track fields from an episode JSON file",
		Long: `Projects the track objects of a JSON document onto a flat field list
and writes them as CSV, JSONL, YAML, or an aligned table.

Examples:
  pvr-tracks -i episode.json
  pvr-tracks -i episode.json --format yaml --fields title,artist
  pvr-tracks -i episode.json --format jsonl --fields title,artist,album,year,bpm
  pvr-tracks -i episode.json --format table --all-fields
  pvr-tracks -i episode.json --format yaml -o tracklist.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			setupLogging(cfg, verbose)

			format, err := tracklist.ParseFormat(formatName)
			if err != nil {
				return err
			}

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			doc, err := jsonval.Unmarshal(data)
			if err != nil {
				return fmt.Errorf("failed to parse input JSON: %w", err)
			}

			records := tracklist.Records(doc)
			export := tracklist.Project(records, exportFields(records, fieldList, allFields))

			out := cmd.OutOrStdout()
			if output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer file.Close()
				out = file
			}
			return export.Write(out, format, yamlRoot)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the input JSON file (required)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "Path to the output file (default: stdout)")
	cmd.Flags().StringVar(&formatName, "format", "csv", "Output format: csv, jsonl, yaml, or table")
	cmd.Flags().StringVar(&fieldList, "fields", "", "Comma-separated list of fields to include (overrides defaults)")
	cmd.Flags().BoolVar(&allFields, "all-fields", false, "Infer all available fields from the data (minus blacklisted ones)")
	cmd.Flags().StringVar(&yamlRoot, "yaml-root-name", "tracklist", "Root key name for YAML output")
	_ = cmd.MarkFlagRequired("input")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a channel config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// exportFields picks the field order for one run: the inferred union
// with --all-fields, an explicit --fields list, or the defaults.
func exportFields(records []*jsonval.Object, fieldList string, allFields bool) []string {
	if allFields {
		return tracklist.AllFields(records)
	}
	if fieldList == "" {
		return tracklist.DefaultFields
	}
	var fields []string
	for _, f := range strings.Split(fieldList, ",") {
		if name := strings.TrimSpace(f); name != "" {
			fields = append(fields, name)
		}
	}
	return fields
}

func setupLogging(cfg *config.Config, verbose bool) {
	level := slog.Level(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
