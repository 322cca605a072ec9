package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/saegey/pvr-tools/config"
	"github.com/saegey/pvr-tools/internal/domain"
	"github.com/saegey/pvr-tools/internal/frontmatter"
	"github.com/saegey/pvr-tools/internal/youtube"
)

func newRootCommand() *cobra.Command {
	var (
		configPath string
		verbose    bool
		comment    bool
		instagram  bool
	)

	cmd := &cobra.Command{
		Use:   "pvr-youtube <post.mdx>",
		Short: "Generate YouTube copy prompts and timestamped comments from a post's front matter",
		Long: `Reads the YAML front matter of an MDX/Markdown post (or a bare YAML
file) and prints a YouTube title/description copywriting prompt. With
--comment it prints a timestamped tracklist comment computed from
tracklist duration_seconds instead; with --instagram an Instagram
caption prompt.

Examples:
  pvr-youtube content/shows/afronova.mdx
  pvr-youtube content/shows/afronova.mdx --comment
  pvr-youtube frontmatter.yml --instagram`,
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
				return fmt.Errorf("failed to read post: %w", err)
			}

			var post domain.Post
			if err := frontmatter.Extract(string(data), &post); err != nil {
				return fmt.Errorf("failed to parse front matter of %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			switch {
			case comment:
				// An episode without display-worthy tracks yields an
				// empty comment, which is valid output.
				if text := youtube.Comment(post.Tracklist); text != "" {
					fmt.Fprintln(out, text)
				}
			case instagram:
				fmt.Fprintln(out, youtube.InstagramPrompt(cfg.Channel, &post))
			default:
				fmt.Fprint(out, youtube.Prompt(cfg.Channel, &post))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&comment, "comment", false, "Print a timestamped YouTube comment built from tracklist durations")
	cmd.Flags().BoolVar(&instagram, "instagram", false, "Print an Instagram caption prompt instead of the YouTube prompt")
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
