package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit basic personal information",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the profile",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set key=value [key=value...]",
	Short: "Set basic info fields",
	Long: "Sets fields of the basic section. Known keys are name, gender, idNumber, phone, email, address, " +
		"householdAddress, ethnicity, birthDate and idType; any other key is stored as a custom field and is " +
		"available to templates as {{basic.<key>}}.",
	Args: cobra.MinimumNArgs(1),
	RunE: runProfileSet,
}

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit basic info interactively",
	Args:  cobra.NoArgs,
	RunE:  runProfileEdit,
}

var profileShowJSON bool

func init() {
	profileShowCmd.Flags().BoolVar(&profileShowJSON, "json", false, "Print the raw profile as JSON")

	profileCmd.AddCommand(profileShowCmd, profileSetCmd, profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		p := a.profile.Snapshot()
		if profileShowJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(p)
		}
		a.printer.PrintProfile(p)
		return nil
	})
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	patch, err := parseAssignments(args)
	if err != nil {
		return err
	}
	return withApp(cmd, func(ctx context.Context, a *app) error {
		if err := a.profile.UpdateBasic(ctx, patch); err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "Updated %d field(s)\n", len(patch))
		return nil
	})
}

func runProfileEdit(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		patch, err := promptBasic(surveyPrompter{}, a.profile.Snapshot().Basic)
		if err != nil {
			return err
		}
		if len(patch) == 0 {
			printf(cmd.OutOrStdout(), "No changes\n")
			return nil
		}
		if err := a.profile.UpdateBasic(ctx, patch); err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "Updated %d field(s)\n", len(patch))
		return nil
	})
}

// parseAssignments turns key=value arguments into a map. Values may be empty
// and may contain '='.
func parseAssignments(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected key=value", arg)
		}
		out[key] = value
	}
	return out, nil
}
