package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vstars/odinctl/firmware"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage device profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available device profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := loadProfiles()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("no profiles defined")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tMODEL")
		for _, p := range profiles {
			marker := ""
			if p.ID == appSettings.LastProfileID {
				marker = " *"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\n", p.ID, marker, p.Name, p.Model)
		}
		return w.Flush()
	},
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one profile in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := loadProfile(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("ID:    %s\n", prof.ID)
		fmt.Printf("Name:  %s\n", prof.Name)
		if prof.Model != "" {
			fmt.Printf("Model: %s\n", prof.Model)
		}
		if prof.Notes != "" {
			fmt.Printf("Notes: %s\n", prof.Notes)
		}
		fmt.Printf("Prefer HOME_CSC: %t\n", prof.DefaultCSCPreferHome)

		if len(prof.Patterns) > 0 {
			fmt.Println("Patterns:")
			names := make([]string, 0, len(prof.Patterns))
			for name := range prof.Patterns {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %-8s %s\n", name, prof.Patterns[name])
			}
		}
		if len(prof.Flags) > 0 {
			fmt.Println("Flags:")
			names := make([]string, 0, len(prof.Flags))
			for name := range prof.Flags {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Printf("  %-14s %t\n", name, prof.Flags[name])
			}
		}
		return nil
	},
}

var profilesApplyCmd = &cobra.Command{
	Use:   "apply <id> <dir>",
	Short: "Resolve firmware with a profile and persist the result",
	Long:  "Resolves the firmware directory with the profile's patterns and\nHOME_CSC preference, stores the resolved files and the profile's flag\ndefaults in settings, and remembers the profile as last used.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := loadProfile(args[0])
		if err != nil {
			return err
		}
		dir := args[1]

		files := firmware.Detect(dir, prof.PatternSet(), prof.DefaultCSCPreferHome)
		printResolved(files)

		opts := prof.FlashOptions()
		appSettings.SetResolvedFiles(files)
		appSettings.Flags.NandErase = opts.NandErase
		appSettings.Flags.HomeValidate = opts.HomeValidate
		appSettings.Flags.Reboot = opts.Reboot
		appSettings.Flags.Redownload = opts.Redownload
		appSettings.PreferHomeCSC = prof.DefaultCSCPreferHome
		appSettings.LastProfileID = prof.ID
		saveSettings()

		fmt.Printf("applied profile %q\n", prof.Name)
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd, profilesShowCmd, profilesApplyCmd)
	rootCmd.AddCommand(profilesCmd)
}
