package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formspec/internal/specfile"
	"github.com/goliatone/go-formspec/pkg/constraint"
)

var validateConfigPath string

var validateCmd = &cobra.Command{
	Use:   "validate <spec-file>",
	Short: "Check a form spec against capability constraints",
	Long: `Runs the structural pass and the constraint engine over a form spec
document and prints every finding grouped by severity. Exits non-zero only
when at least one error-severity issue exists.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd, args[0])
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateConfigPath, "config", "", "constraint configuration file (JSON or YAML)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, path string) error {
	spec, err := specfile.Load(path)
	if err != nil {
		return err
	}

	cfg := constraint.DefaultConfig()
	if validateConfigPath != "" {
		cfg, err = constraint.LoadConfig(validateConfigPath)
		if err != nil {
			return err
		}
	}

	issues := constraint.Structure(spec)
	result := constraint.Validate(spec, cfg)
	issues = append(issues, result.Issues...)

	printIssues(cmd, issues)

	for _, issue := range issues {
		if issue.Severity == constraint.IssueError {
			exitCode = 1
			break
		}
	}
	return nil
}

func printIssues(cmd *cobra.Command, issues []constraint.Issue) {
	if len(issues) == 0 {
		cmd.Println("Spec is valid, no issues found.")
		return
	}

	headers := map[string]string{
		constraint.IssueError:   "Errors:",
		constraint.IssueWarning: "Warnings:",
	}
	for _, severity := range []string{constraint.IssueError, constraint.IssueWarning} {
		printed := false
		for _, issue := range issues {
			if issue.Severity != severity {
				continue
			}
			if !printed {
				cmd.Println(headers[severity])
				printed = true
			}
			cmd.Printf("  [%s] %s: %s\n", issue.Code, issue.Path, issue.Message)
		}
	}
}
