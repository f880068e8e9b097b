package main

import (
	"context"
	"strings"

	"github.com/jonathan/infofill/internal/profile"
	"github.com/jonathan/infofill/internal/types"
	"github.com/spf13/cobra"
)

var experienceCmd = &cobra.Command{
	Use:     "experience",
	Aliases: []string{"exp"},
	Short:   "Manage education and work experience",
}

var experienceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List experiences",
	Args:  cobra.NoArgs,
	RunE:  runExperienceList,
}

var experienceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an experience",
	Args:  cobra.NoArgs,
	RunE:  runExperienceAdd,
}

var experienceUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an experience",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceUpdate,
}

var experienceRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove an experience",
	Args:  cobra.ExactArgs(1),
	RunE:  runExperienceRemove,
}

var (
	experienceType        string
	experienceName        string
	experienceRole        string
	experienceTitle       string
	experienceStartDate   string
	experienceEndDate     string
	experienceLocation    string
	experienceDescription string
	experienceListSorted  bool
)

func bindExperienceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&experienceType, "type", "", "Experience type: education or work (default education)")
	cmd.Flags().StringVar(&experienceName, "name", "", "School or company")
	cmd.Flags().StringVar(&experienceRole, "role", "", "Major or department")
	cmd.Flags().StringVar(&experienceTitle, "title", "", "Degree or job title")
	cmd.Flags().StringVar(&experienceStartDate, "start", "", "Start date, e.g. 2020-09 or 2020.9")
	cmd.Flags().StringVar(&experienceEndDate, "end", "", "End date, e.g. 2024-06")
	cmd.Flags().StringVar(&experienceLocation, "location", "", "Location")
	cmd.Flags().StringVar(&experienceDescription, "description", "", "Free-form description")
}

func init() {
	bindExperienceFlags(experienceAddCmd)
	bindExperienceFlags(experienceUpdateCmd)
	experienceListCmd.Flags().BoolVar(&experienceListSorted, "sorted", true, "Order by start date instead of storage order")

	experienceCmd.AddCommand(experienceListCmd, experienceAddCmd, experienceUpdateCmd, experienceRemoveCmd)
	rootCmd.AddCommand(experienceCmd)
}

func runExperienceList(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		list := a.profile.Snapshot().Experiences
		if experienceListSorted {
			list = a.profile.SortedExperiences()
		}
		a.printer.PrintExperiences(list)
		return nil
	})
}

func runExperienceAdd(cmd *cobra.Command, _ []string) error {
	exp := profile.NormalizeExperience(types.Experience{
		Type:        types.ExperienceType(experienceType),
		Name:        experienceName,
		Role:        experienceRole,
		Title:       experienceTitle,
		StartDate:   experienceStartDate,
		EndDate:     experienceEndDate,
		Location:    experienceLocation,
		Description: experienceDescription,
	})
	return withApp(cmd, func(ctx context.Context, a *app) error {
		id, err := a.profile.AddExperience(ctx, exp)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", id)
		return nil
	})
}

// experiencePatchFromFlags includes only the flags set on the command line.
func experiencePatchFromFlags(cmd *cobra.Command) profile.ExperiencePatch {
	var patch profile.ExperiencePatch
	flags := cmd.Flags()
	if flags.Changed("type") {
		t := types.ExperienceType(strings.ToLower(strings.TrimSpace(experienceType)))
		patch.Type = &t
	}
	if flags.Changed("name") {
		patch.Name = &experienceName
	}
	if flags.Changed("role") {
		patch.Role = &experienceRole
	}
	if flags.Changed("title") {
		patch.Title = &experienceTitle
	}
	if flags.Changed("start") {
		start := profile.NormalizeDate(experienceStartDate)
		patch.StartDate = &start
	}
	if flags.Changed("end") {
		end := profile.NormalizeDate(experienceEndDate)
		patch.EndDate = &end
	}
	if flags.Changed("location") {
		patch.Location = &experienceLocation
	}
	if flags.Changed("description") {
		patch.Description = &experienceDescription
	}
	return patch
}

func runExperienceUpdate(cmd *cobra.Command, args []string) error {
	patch := experiencePatchFromFlags(cmd)
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return a.profile.UpdateExperience(ctx, args[0], patch)
	})
}

func runExperienceRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return a.profile.RemoveExperience(ctx, args[0])
	})
}
