// SPDX-FileCopyrightText: 2026 European Alternatives Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AlbertUnruh/european-alternatives/internal/output"
)

func newShowCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry with its trust score breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runShow(opts, args[0])
		},
	}
}

func runShow(opts *Options, id string) error {
	entries, err := loadCatalogue(opts)
	if err != nil {
		return err
	}

	for i := range entries {
		if !strings.EqualFold(entries[i].ID, id) {
			continue
		}

		w, closeOutput, err := openOutput(opts)
		if err != nil {
			return err
		}
		defer closeOutput()

		switch opts.Format {
		case "json":
			return output.WriteJSON(w, output.Scored(entries[i:i+1])[0])
		case "table":
			cfg := output.TableConfig{IsTerminal: output.IsOutputToTerminal(w)}
			return output.WriteBreakdown(w, &entries[i], cfg)
		default:
			return &ExitError{
				Code:    2,
				Message: fmt.Sprintf("unsupported output format: %s", opts.Format),
			}
		}
	}

	return &ExitError{
		Code:    2,
		Message: fmt.Sprintf("no catalogue entry with id %q", id),
	}
}
