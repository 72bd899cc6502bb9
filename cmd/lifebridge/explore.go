package main

import (
	"github.com/lifebridge/lifebridge/internal/tui"
	"github.com/spf13/cobra"
)

func exploreCmd(a *app) *cobra.Command {
	var orderByAge bool

	cmd := &cobra.Command{
		Use:   "explore [profile-file]",
		Short: "Explore life events interactively in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := loadProfiles(args)
			if err != nil {
				return err
			}
			return tui.Run(a.newEngine(orderByAge), profileTitle(files[0].Name, args[0]), files[0].Profile)
		},
	}
	cmd.Flags().BoolVar(&orderByAge, "order-by-age", false, "Treat children eldest first instead of in file order")
	return cmd
}
