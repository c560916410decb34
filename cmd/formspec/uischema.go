package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formspec/internal/specfile"
	"github.com/goliatone/go-formspec/pkg/schemagen"
)

var uischemaOutputPath string

var uischemaCmd = &cobra.Command{
	Use:   "uischema <spec-file>",
	Short: "Derive the UI layout and visibility schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUISchema(cmd, args[0])
	},
}

func init() {
	uischemaCmd.Flags().StringVar(&uischemaOutputPath, "output", "", "output file (stdout if empty)")
	rootCmd.AddCommand(uischemaCmd)
}

func runUISchema(cmd *cobra.Command, path string) error {
	spec, err := specfile.Load(path)
	if err != nil {
		return err
	}

	ui, err := schemagen.GenerateUI(spec)
	if err != nil {
		return err
	}
	return writeJSON(cmd, ui, uischemaOutputPath)
}
