package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/infofill/internal/templates"
	"github.com/jonathan/infofill/internal/types"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Manage the template library",
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a template's content",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a template",
	Long:  "Adds a template. Content comes from --content or --file; without either the template starts empty.",
	Args:  cobra.NoArgs,
	RunE:  runTemplateAdd,
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateUpdate,
}

var templateRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateRemove,
}

var templateResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Replace the library with the built-in templates",
	Args:  cobra.NoArgs,
	RunE:  runTemplateReset,
}

var templateImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Merge templates from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateImport,
}

var templateExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the library as YAML",
	Args:  cobra.NoArgs,
	RunE:  runTemplateExport,
}

var (
	templateName        string
	templateType        string
	templateContent     string
	templateContentFile string
	templateExportFile  string
)

func bindTemplateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&templateName, "name", "", "Template name")
	cmd.Flags().StringVar(&templateType, "type", "", "Output format: text, json or table")
	cmd.Flags().StringVar(&templateContent, "content", "", "Template content")
	cmd.Flags().StringVarP(&templateContentFile, "file", "f", "", "Read template content from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

func init() {
	bindTemplateFlags(templateAddCmd)
	bindTemplateFlags(templateUpdateCmd)
	templateExportCmd.Flags().StringVarP(&templateExportFile, "out", "o", "", "Output file (default stdout)")

	templateCmd.AddCommand(
		templateListCmd,
		templateShowCmd,
		templateAddCmd,
		templateUpdateCmd,
		templateRemoveCmd,
		templateResetCmd,
		templateImportCmd,
		templateExportCmd,
	)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		a.printer.PrintTemplates(a.templates.List())
		return nil
	})
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		tmpl, err := a.templates.Get(args[0])
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", tmpl.Content)
		return nil
	})
}

// templateContentFromFlags returns the content given by --content or --file,
// and whether either was set.
func templateContentFromFlags(cmd *cobra.Command) (string, bool, error) {
	if cmd.Flags().Changed("file") {
		data, err := os.ReadFile(templateContentFile)
		if err != nil {
			return "", false, fmt.Errorf("failed to read template file: %w", err)
		}
		return string(data), true, nil
	}
	if cmd.Flags().Changed("content") {
		return templateContent, true, nil
	}
	return "", false, nil
}

func runTemplateAdd(cmd *cobra.Command, _ []string) error {
	tmpl := templates.Blank()
	if cmd.Flags().Changed("name") {
		tmpl.Name = templateName
	}
	if cmd.Flags().Changed("type") {
		tmpl.Type = types.TemplateType(templateType)
	}
	content, ok, err := templateContentFromFlags(cmd)
	if err != nil {
		return err
	}
	if ok {
		tmpl.Content = content
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		id, err := a.templates.Add(ctx, tmpl)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", id)
		return nil
	})
}

func runTemplateUpdate(cmd *cobra.Command, args []string) error {
	var patch templates.Patch
	if cmd.Flags().Changed("name") {
		patch.Name = &templateName
	}
	if cmd.Flags().Changed("type") {
		t := types.TemplateType(templateType)
		patch.Type = &t
	}
	content, ok, err := templateContentFromFlags(cmd)
	if err != nil {
		return err
	}
	if ok {
		patch.Content = &content
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		return a.templates.Update(ctx, args[0], patch)
	})
}

func runTemplateRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return a.templates.Remove(ctx, args[0])
	})
}

func runTemplateReset(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if err := a.templates.Reset(ctx); err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "Restored %d built-in templates\n", len(templates.Defaults()))
		return nil
	})
}

func runTemplateImport(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open import file: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	return withApp(cmd, func(ctx context.Context, a *app) error {
		n, err := a.templates.Import(ctx, r)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "Imported %d template(s)\n", n)
		return nil
	})
}

func runTemplateExport(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		if templateExportFile == "" {
			return a.templates.Export(cmd.OutOrStdout())
		}
		f, err := os.Create(templateExportFile)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		if err := a.templates.Export(f); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	})
}
