package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/jonathan/infofill/internal/observability"
	"github.com/jonathan/infofill/internal/rendering"
	"github.com/jonathan/infofill/internal/types"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render templates against the profile",
	Long: "Renders one template (--template) or the whole library (--all) against the current profile. " +
		"Values are inserted verbatim unless --escape selects html or latex escaping.",
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

var (
	generateTemplateID string
	generateEscape     string
	generateOutputFile string
	generateAll        bool
	generateOutputDir  string
)

func init() {
	generateCmd.Flags().StringVarP(&generateTemplateID, "template", "t", "", "Template id to render")
	generateCmd.Flags().StringVar(&generateEscape, "escape", string(rendering.EscapeNone), "Escaping: none, html or latex")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Write output to a file instead of stdout")
	generateCmd.Flags().BoolVar(&generateAll, "all", false, "Render every template in the library")
	generateCmd.Flags().StringVar(&generateOutputDir, "out-dir", "", "Output directory for --all")

	generateCmd.MarkFlagsMutuallyExclusive("template", "all")
	generateCmd.MarkFlagsOneRequired("template", "all")
	generateCmd.MarkFlagsMutuallyExclusive("out", "all")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	mode, err := rendering.ParseEscapeMode(generateEscape)
	if err != nil {
		return err
	}
	opts := rendering.Options{Escape: mode}

	if generateAll && generateOutputDir == "" {
		return fmt.Errorf("--out-dir is required with --all")
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		if generateAll {
			return generateLibrary(ctx, cmd, a, opts)
		}
		return generateOne(cmd, a, opts)
	})
}

func generateOne(cmd *cobra.Command, a *app, opts rendering.Options) error {
	tmpl, err := a.templates.Get(generateTemplateID)
	if err != nil {
		return err
	}

	out, err := rendering.Generate(a.profile.Snapshot(), tmpl, opts, a.logger)
	if err != nil {
		return errors.New(out)
	}
	if err := rendering.CheckOutput(tmpl, out); err != nil {
		a.logger.Warn().Err(err).Str("template_id", tmpl.ID).Msg("output does not match template type")
	}

	if generateOutputFile == "" {
		printf(cmd.OutOrStdout(), "%s\n", out)
		return nil
	}
	if err := writeOutput(generateOutputFile, out); err != nil {
		return err
	}
	printf(cmd.OutOrStdout(), "Output: %s\n", generateOutputFile)
	return nil
}

func generateLibrary(ctx context.Context, cmd *cobra.Command, a *app, opts rendering.Options) error {
	list := a.templates.List()
	results, err := rendering.RenderAll(ctx, a.profile.Snapshot(), list, opts, runtime.NumCPU())
	if err != nil {
		return err
	}

	summary := make([]observability.GenerationResult, 0, len(results))
	failed := 0
	for _, r := range results {
		res := observability.GenerationResult{TemplateID: r.Template.ID, Err: r.Err}
		if r.Err == nil {
			if err := rendering.CheckOutput(r.Template, r.Output); err != nil {
				a.logger.Warn().Err(err).Str("template_id", r.Template.ID).Msg("output does not match template type")
			}
			res.Path = filepath.Join(generateOutputDir, outputFileName(r.Template))
			res.Err = writeOutput(res.Path, r.Output)
		} else {
			a.logger.Error().Err(r.Err).Str("template_id", r.Template.ID).Msg("generation failed")
		}
		if res.Err != nil {
			failed++
		}
		summary = append(summary, res)
	}

	a.printer.PrintGenerationSummary(summary)
	if failed > 0 {
		return fmt.Errorf("%d of %d templates failed", failed, len(results))
	}
	return nil
}

// outputFileName names a rendered template's output file after its id and type.
func outputFileName(tmpl types.Template) string {
	ext := ".txt"
	switch tmpl.Type {
	case types.TemplateJSON:
		ext = ".json"
	case types.TemplateTable:
		ext = ".tsv"
	}
	return tmpl.ID + ext
}

func writeOutput(path, content string) error {
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
