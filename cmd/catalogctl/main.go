// catalogctl prepares and checks catalog files for the API service.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ogulcan/coursepilot/internal/app/catalog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogctl",
		Short: "Catalog file tooling for the schedule assembly service",
	}
	root.AddCommand(newConvertCmd(), newValidateCmd())
	return root
}

func newConvertCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "convert <feed.json>",
		Short: "Convert a registrar feed export into the catalog format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read feed file: %w", err)
			}

			var feed []catalog.FeedCourse
			if err := json.Unmarshal(data, &feed); err != nil {
				return fmt.Errorf("failed to decode feed file: %w", err)
			}

			raw := catalog.ConvertFeed(feed)
			out, err := json.MarshalIndent(raw, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("failed to write catalog file: %w", err)
			}

			cmd.Printf("converted %d of %d courses to %s\n", len(raw.Courses), len(feed), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "catalog.json", "output catalog file")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog.json>",
		Short: "Load a catalog file and report what the service would see",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			built, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}

			var sections, unschedulable int
			for _, course := range built.Courses() {
				for i := range course.Sections {
					sections++
					if !course.Sections[i].Schedulable() {
						unschedulable++
					}
				}
			}

			cmd.Printf("courses: %d\n", built.Size())
			cmd.Printf("sections: %d (%d unschedulable)\n", sections, unschedulable)
			return nil
		},
	}
}
