package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saegey/pvr-tools/config"
	"github.com/saegey/pvr-tools/internal/episode"
	"github.com/saegey/pvr-tools/internal/jsonval"
)

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		output     string
		pretty     bool
		dropKeys   []string
	)

	cmd := &cobra.Command{
		Use:   "pvr-prompt <episode.json>",
		Short: "Generate a blog-post LLM prompt from an episode JSON file",
		Long: `Reads an episode JSON document, strips machine-learning payload keys
at every nesting depth, and prints an LLM prompt that generates the
episode blog post in the site's YAML + markdown format.

Examples:
  pvr-prompt episode.json > prompt.txt
  pvr-prompt episode.json -o prompt.txt
  pvr-prompt episode.json --drop waveform --drop analysis
  pvr-prompt episode.json --pretty`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			setupLogging(cfg, verbose)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read episode file: %w", err)
			}
			doc, err := jsonval.Unmarshal(data)
			if err != nil {
				return fmt.Errorf("failed to parse episode JSON: %w", err)
			}

			drop := episode.DropSet(append(cfg.Prompt.DropFields, dropKeys...)...)
			slog.Debug("stripping episode JSON", "keys", drop.Keys())
			prompt, err := episode.Prompt(cfg.Channel.Name, jsonval.Strip(doc, drop), pretty)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, []byte(prompt), 0644); err != nil {
					return fmt.Errorf("failed to write prompt: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✅ Wrote prompt to %s\n", output)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), prompt)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the prompt to this file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the embedded episode JSON")
	cmd.Flags().StringArrayVar(&dropKeys, "drop", nil, "Additional keys to strip anywhere in the JSON (repeatable)")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a channel config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func setupLogging(cfg *config.Config, verbose bool) {
	level := slog.Level(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
