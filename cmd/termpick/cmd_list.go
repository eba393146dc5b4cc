package main

import (
	"fmt"

	"github.com/ruminaider/termpick/internal/profile"
	"github.com/ruminaider/termpick/internal/quickpick"
	"github.com/spf13/cobra"
)

var (
	listConfigured  bool
	listDetected    bool
	listContributed bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp("")
		if err != nil {
			return err
		}
		defer app.Close()

		available, err := app.cat.AvailableProfiles(cmd.Context())
		if err != nil {
			return err
		}
		contributed := app.cat.ContributedProfiles()

		all := !listConfigured && !listDetected && !listContributed
		if !all {
			var keep []profile.Profile
			for _, p := range available {
				if local, ok := p.(profile.Local); ok && local.AutoDetected {
					if listDetected {
						keep = append(keep, p)
					}
					continue
				}
				if listConfigured {
					keep = append(keep, p)
				}
			}
			available = keep
			if !listContributed {
				contributed = nil
			}
		}

		defaultName := app.cat.ConfiguredDefaultProfileName()
		items := quickpick.NewBuilder().Build(available, contributed, defaultName)
		if len(items) == 0 {
			fmt.Println("No profiles found.")
			return nil
		}

		for _, it := range items {
			if it.Separator {
				fmt.Printf("── %s ──\n", it.Label)
				continue
			}
			marker := "  "
			if it.ProfileName == defaultName {
				marker = "* "
			}
			if it.Description != "" {
				fmt.Printf("%s%s  %s\n", marker, it.Label, it.Description)
			} else {
				fmt.Printf("%s%s\n", marker, it.Label)
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listConfigured, "configured", false, "Only configured profiles")
	listCmd.Flags().BoolVar(&listDetected, "detected", false, "Only auto-detected shells")
	listCmd.Flags().BoolVar(&listContributed, "contributed", false, "Only plugin-contributed profiles")
}
