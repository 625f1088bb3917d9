package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/orgchart/pkg/errors"
	"github.com/matzehuels/orgchart/pkg/pipeline"
)

// sectionTitles are the stderr headings of the full run, keyed by format.
var sectionTitles = map[string]string{
	pipeline.FormatTree:    "Organization Chart",
	pipeline.FormatVisio:   "\nReporting Relationships (for Visio import)",
	pipeline.FormatMermaid: "\nMermaid Flowchart",
	pipeline.FormatSVG:     "\nGenerating SVG...",
}

// renderFlags holds the command-line flags of the root command.
type renderFlags struct {
	format   string
	output   string
	tabWidth int
	distinct bool
	noCache  bool
}

// renderCommand creates the root command that renders an organization file.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "orgchart [filename]",
		Short: "orgchart renders indented org files as charts",
		Long: `orgchart reads a plain-text organization file where indentation marks
reporting relationships and renders it as an indented listing, Visio import
lines, a Mermaid flowchart and a Graphviz image.

Without --format all four outputs are produced in that order.`,
		Example: `  orgchart
  orgchart team.txt -f mermaid
  orgchart team.txt -f png -o docs/team`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := loadConfig(cfgPath, c.Logger)
			if err != nil {
				return err
			}
			flags.apply(cmd, &cfg)
			if len(args) == 1 {
				cfg.Input = args[0]
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "output format: "+strings.Join(pipeline.Formats, ", ")+" (default: tree, visio, mermaid and svg)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", defaultOutput, "base name of generated image files")
	cmd.Flags().IntVar(&flags.tabWidth, "tab-width", 0, "expand tabs to this width when measuring indentation (0 counts each whitespace character once)")
	cmd.Flags().BoolVar(&flags.distinct, "distinct", false, "draw one image box per entry even when names repeat")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable the rendered-image cache")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f renderFlags) apply(cmd *cobra.Command, cfg *Config) {
	set := cmd.Flags().Changed
	if set("format") {
		cfg.Format = f.format
	}
	if set("output") {
		cfg.Output = f.output
	}
	if set("tab-width") {
		cfg.TabWidth = f.tabWidth
	}
	if set("distinct") {
		cfg.Distinct = f.distinct
	}
}

func (c *CLI) runRender(ctx context.Context, cfg Config, noCache bool) error {
	// Text formats never touch the image cache.
	if cfg.Format != "" && !pipeline.IsImage(cfg.Format) {
		noCache = true
	}
	runner := c.newRunner(cfg, noCache)
	defer runner.Cache.Close()

	opts := pipeline.Options{TabWidth: cfg.TabWidth, Distinct: cfg.Distinct}
	in, err := runner.ParseFile(ctx, cfg.Input, opts)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		fmt.Fprintf(c.Stdout, "Error: %s not found. Please create a text file with your organization structure.\n", cfg.Input)
		fmt.Fprintln(c.Stdout, "Each line should represent a resource, with indentation showing reporting relationships.")
		return nil
	}
	if err != nil {
		return err
	}
	if _, err := in.Tree.First(); err != nil {
		fmt.Fprintf(c.Stdout, "Error: %s describes an empty organization.\n", cfg.Input)
		return nil
	}

	if cfg.Format != "" {
		opts.Format = cfg.Format
		path, err := c.renderOne(ctx, runner, in, opts, cfg.Output)
		if err != nil || path == "" {
			return err
		}
		fmt.Fprintln(c.Stdout, generatedMessage(opts.Format, path))
		return nil
	}

	for _, format := range pipeline.DefaultFormats {
		printTitle(c.Stderr, sectionTitles[format])
		opts.Format = format
		path, err := c.renderOne(ctx, runner, in, opts, cfg.Output)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintln(c.Stderr, StyleSuccess.Render(generatedMessage(format, path)))
		}
	}
	return nil
}

// renderOne renders a single format. Text is written to stdout; images are
// written to <output>.<format> and the file path is returned.
func (c *CLI) renderOne(ctx context.Context, runner *pipeline.Runner, in *pipeline.Input, opts pipeline.Options, output string) (string, error) {
	prog := newProgress(c.Logger)
	art, err := runner.Render(ctx, in, opts)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", opts.Format, err)
	}

	if !pipeline.IsImage(opts.Format) {
		_, err := c.Stdout.Write(art.Data)
		return "", err
	}

	path := output + "." + opts.Format
	if err := os.WriteFile(path, art.Data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	prog.done("Rendered " + path)
	return path, nil
}

func generatedMessage(format, path string) string {
	return fmt.Sprintf("%s file generated: %s", strings.ToUpper(format), path)
}
