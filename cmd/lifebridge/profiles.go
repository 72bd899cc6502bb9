package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lifebridge/lifebridge/internal/config"
	"github.com/lifebridge/lifebridge/internal/output"
	"github.com/lifebridge/lifebridge/internal/store"
	"github.com/spf13/cobra"
)

func profilesCmd(a *app) *cobra.Command {
	var dbPath string

	open := func(cmd *cobra.Command) (store.ProfileStore, error) {
		path := dbPath
		if path == "" {
			path = a.config.DBPath
		}
		return store.OpenSQLite(cmd.Context(), path)
	}

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage saved household profiles",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default $LIFEBRIDGE_DB or lifebridge.db)")

	var name, id string
	save := &cobra.Command{
		Use:   "save [profile-file]",
		Short: "Save a profile file to the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := loadProfiles(args)
			if err != nil {
				return err
			}
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			title := name
			if title == "" {
				title = profileTitle(files[0].Name, args[0])
			}
			saved, err := s.Save(cmd.Context(), store.StoredProfile{ID: id, Name: title, Profile: files[0].Profile})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", saved.ID, saved.Name)
			return nil
		},
	}
	save.Flags().StringVar(&name, "name", "", "Display name (default: name in the file or the file name)")
	save.Flags().StringVar(&id, "id", "", "Replace the profile with this id instead of creating one")

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			profiles, err := s.List(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tINCOME\tCHILDREN\tUPDATED")
			for _, p := range profiles {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
					p.ID, p.Name, output.FormatYen(p.Profile.AnnualIncome), p.Profile.NumberOfChildren,
					p.UpdatedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	var format string
	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a saved profile and its simulated benefits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := s.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if strings.ToLower(format) == "profile" {
				data, err := config.Marshal(&config.ProfileFile{Name: p.Name, Profile: p.Profile})
				if err != nil {
					return err
				}
				return writeOutput(cmd.OutOrStdout(), data)
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown output format: %s (valid: profile, %s)", format, strings.Join(output.FormatterNames(), ", "))
			}
			result, err := a.newEngine(false).SimulateChecked(p.Profile)
			if err != nil {
				return err
			}
			data, err := formatter.Format([]*output.Report{output.NewReport(p.Name, result)})
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), data)
		},
	}
	show.Flags().StringVarP(&format, "format", "f", "console", "Output format (profile for the YAML profile, or "+strings.Join(output.FormatterNames(), ", ")+")")

	del := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a saved profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(save, list, show, del)
	return cmd
}
