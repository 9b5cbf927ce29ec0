// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AlbertUnruh/european-alternatives/internal/validate"
)

func newValidateCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check catalogue integrity and exit non-zero on failure",
		Long: `validate runs the batch integrity checks over the catalogue: vendor
comparison coverage and invariants, unique comparison ids, enumerated
jurisdiction codes and reservation severities. All failures in the batch
are reported in one pass. Intended as a build-time gate.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runValidate(opts)
		},
	}
}

func runValidate(opts *Options) error {
	entries, err := loadCatalogue(opts)
	if err != nil {
		return err
	}

	failures := validate.Check(entries)
	if len(failures) == 0 {
		fmt.Printf("catalogue OK: %d entries\n", len(entries))
		return nil
	}

	for _, f := range failures {
		fmt.Fprintln(os.Stderr, f)
	}
	return &ExitError{
		Code:    1,
		Message: fmt.Sprintf("%d catalogue integrity failure(s)", len(failures)),
	}
}
