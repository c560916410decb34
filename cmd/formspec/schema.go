package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formspec/internal/specfile"
	exportopenapi "github.com/goliatone/go-formspec/pkg/export/openapi"
	"github.com/goliatone/go-formspec/pkg/schemagen"
)

var (
	schemaOutputPath string
	schemaAsOpenAPI  bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema <spec-file>",
	Short: "Derive the validation schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchema(cmd, args[0])
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaOutputPath, "output", "", "output file (stdout if empty)")
	schemaCmd.Flags().BoolVar(&schemaAsOpenAPI, "openapi", false, "emit the schema in OpenAPI 3 form")
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, path string) error {
	spec, err := specfile.Load(path)
	if err != nil {
		return err
	}

	schema, err := schemagen.Generate(spec)
	if err != nil {
		return err
	}

	var payload any = schema
	if schemaAsOpenAPI {
		payload = exportopenapi.Schema(schema)
	}
	return writeJSON(cmd, payload, schemaOutputPath)
}

func writeJSON(cmd *cobra.Command, payload any, output string) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	data = append(data, '\n')

	if output == "" {
		cmd.Print(string(data))
		return nil
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	cmd.Printf("Schema written to %s\n", output)
	return nil
}
