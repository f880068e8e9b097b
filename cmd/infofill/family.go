package main

import (
	"context"

	"github.com/jonathan/infofill/internal/profile"
	"github.com/jonathan/infofill/internal/types"
	"github.com/spf13/cobra"
)

var familyCmd = &cobra.Command{
	Use:   "family",
	Short: "Manage family members",
}

var familyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List family members",
	Args:  cobra.NoArgs,
	RunE:  runFamilyList,
}

var familyAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a family member",
	Args:  cobra.NoArgs,
	RunE:  runFamilyAdd,
}

var familyUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a family member",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamilyUpdate,
}

var familyRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a family member",
	Args:  cobra.ExactArgs(1),
	RunE:  runFamilyRemove,
}

var (
	familyRelation string
	familyName     string
	familyCompany  string
	familyPosition string
	familyPhone    string
)

func bindFamilyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&familyRelation, "relation", "", "Relation, e.g. 父亲")
	cmd.Flags().StringVar(&familyName, "name", "", "Name")
	cmd.Flags().StringVar(&familyCompany, "company", "", "Employer")
	cmd.Flags().StringVar(&familyPosition, "position", "", "Position")
	cmd.Flags().StringVar(&familyPhone, "phone", "", "Phone number")
}

func init() {
	bindFamilyFlags(familyAddCmd)
	bindFamilyFlags(familyUpdateCmd)

	familyCmd.AddCommand(familyListCmd, familyAddCmd, familyUpdateCmd, familyRemoveCmd)
	rootCmd.AddCommand(familyCmd)
}

func runFamilyList(cmd *cobra.Command, _ []string) error {
	return withApp(cmd, func(_ context.Context, a *app) error {
		a.printer.PrintFamily(a.profile.Snapshot().Family)
		return nil
	})
}

func runFamilyAdd(cmd *cobra.Command, _ []string) error {
	member := types.Family{
		Relation: familyRelation,
		Name:     familyName,
		Company:  familyCompany,
		Position: familyPosition,
		Phone:    familyPhone,
	}
	return withApp(cmd, func(ctx context.Context, a *app) error {
		id, err := a.profile.AddFamily(ctx, member)
		if err != nil {
			return err
		}
		printf(cmd.OutOrStdout(), "%s\n", id)
		return nil
	})
}

func familyPatchFromFlags(cmd *cobra.Command) profile.FamilyPatch {
	var patch profile.FamilyPatch
	flags := cmd.Flags()
	if flags.Changed("relation") {
		patch.Relation = &familyRelation
	}
	if flags.Changed("name") {
		patch.Name = &familyName
	}
	if flags.Changed("company") {
		patch.Company = &familyCompany
	}
	if flags.Changed("position") {
		patch.Position = &familyPosition
	}
	if flags.Changed("phone") {
		patch.Phone = &familyPhone
	}
	return patch
}

func runFamilyUpdate(cmd *cobra.Command, args []string) error {
	patch := familyPatchFromFlags(cmd)
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return a.profile.UpdateFamily(ctx, args[0], patch)
	})
}

func runFamilyRemove(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app) error {
		return a.profile.RemoveFamily(ctx, args[0])
	})
}
