package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"advocate-backend/advisor"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "advocate",
		Short: "Rule-based legal issue classifier",
		Long: `Advocate maps a free-text description of a dispute onto legal issue
categories and prints the advice the server would return for it.

Reference data comes from the built-in tables unless --reference
points at a YAML file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("reference", os.Getenv("REFERENCE_FILE"), "YAML reference file (default: built-in tables)")

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(issuesCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(exportCmd())

	return rootCmd
}

func loadAdvisor(cmd *cobra.Command) (*advisor.Advisor, error) {
	path, _ := cmd.Flags().GetString("reference")
	if path == "" {
		return advisor.NewDefault()
	}
	return advisor.LoadReferenceFile(path)
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <text>",
		Short: "Classify a description and print the advice",
		Long: `Classify a description and print the advice as JSON.

Example:
  advocate classify "someone stole my phone"
  advocate classify --issues-only my neighbor plays loud music`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			issuesOnly, _ := cmd.Flags().GetBool("issues-only")

			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return fmt.Errorf("please enter a message")
			}

			adv, err := loadAdvisor(cmd)
			if err != nil {
				return err
			}

			advice, source := adv.AdviseWithSource(text)
			out := cmd.OutOrStdout()

			if issuesOnly {
				fmt.Fprintf(out, "source: %s\n", source)
				for _, id := range advice.IssuesIdentified {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(advice); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "matched by: %s\n", source)
			return nil
		},
	}
	cmd.Flags().Bool("issues-only", false, "Print only the match source and issue identifiers")
	return cmd
}

func issuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issues",
		Short: "List the issue reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := loadAdvisor(cmd)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ISSUE\tSECTION\tCATEGORY\tPRECEDENTS")
			for _, issue := range adv.Store().Issues() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\n",
					issue.ID, issue.Section, issue.Category, len(adv.Store().Precedents(issue.ID)))
			}
			return w.Flush()
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML reference file for configuration errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := advisor.LoadReferenceFile(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK (%d issues, %d keywords)\n",
				args[0], adv.Store().Len(), adv.Keywords().Len())
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the reference tables as YAML",
		Long: `Write the active reference tables as YAML, suitable as a starting
point for a custom REFERENCE_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			adv, err := loadAdvisor(cmd)
			if err != nil {
				return err
			}

			if output == "" {
				return advisor.WriteReference(cmd.OutOrStdout(), adv)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := advisor.WriteReference(f, adv); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	return cmd
}
