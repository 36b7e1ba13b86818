package main

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	v "github.com/Gobd/inputvalidation"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the menu file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ref, err := v.ConfigSchema(v.MenuConfig{})
			if err != nil {
				return errors.Wrap(err, "generating schema")
			}
			b, err := json.MarshalIndent(ref, "", "  ")
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(b, '\n'))
			return err
		},
	}
}
