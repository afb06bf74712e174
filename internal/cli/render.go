package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartgeom/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file (single format) or base path
	formats    string  // comma-separated output formats
	scale      float64 // PNG pixel density
	background string  // background color; empty uses the theme
	indent     bool    // pretty-print JSON output
	noCache    bool    // bypass the artifact cache entirely
	refresh    bool    // re-render and overwrite cached artifacts
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart document to SVG, PNG or JSON",
		Long: `Render a chart document (TOML or JSON) to one or more output formats.

Output files are named after the chart unless -o is given. With a single
format, -o names the file; with several, -o is the base path and the
format is appended as the extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(opts.formats)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], formats, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().StringVar(&opts.background, "background", "", "background color (default: theme background)")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "pretty-print JSON output")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts and render again")

	return cmd
}

// runRender executes the pipeline for input and writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, formats []string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	var spinner *Spinner
	if logger.GetLevel() > log.DebugLevel {
		spinner = newSpinnerWithContext(ctx, os.Stderr, "Rendering "+filepath.Base(input))
		spinner.Start()
	}
	result, err := runner.Execute(ctx, pipeline.Options{
		ChartPath:  input,
		Formats:    formats,
		Scale:      opts.scale,
		Background: opts.background,
		Indent:     opts.indent,
		Refresh:    opts.refresh,
		Logger:     logger,
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, input, formats)
	for _, p := range paths {
		if filepath.Clean(p) == filepath.Clean(input) {
			return fmt.Errorf("output %s would overwrite the chart; pass -o", p)
		}
	}
	for i, format := range formats {
		if err := writeFile(paths[i], result.Artifacts[format]); err != nil {
			return err
		}
		logger.Debug("wrote artifact", "path", paths[i], "bytes", len(result.Artifacts[format]))
	}
	prog.done("Rendered " + input)

	title := result.Document.Title
	if title == "" {
		title = filepath.Base(input)
	}
	printSuccess("Rendered %s", title)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Records, result.Stats.Shapes, result.CacheInfo.RenderHit)
	return nil
}

// outputPaths returns the file written for each format, in order.
func outputPaths(output, input string, formats []string) []string {
	if output != "" && len(formats) == 1 {
		return []string{output}
	}
	base := basePath(output, input)
	paths := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .png, .json), it strips that too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
