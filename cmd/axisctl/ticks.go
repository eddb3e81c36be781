// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	axis "github.com/kofi-q/axis-go"
)

func ticksCmd(opts *options) *cobra.Command {
	var majorOnly bool

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks of the configured range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := opts.loadAxis()
			if err != nil {
				return err
			}
			m, err := a.Mapper()
			if err != nil {
				return err
			}
			if err := m.Degenerate(); err != nil {
				return err
			}
			return writeTicks(cmd.OutOrStdout(), a, m, majorOnly)
		},
	}
	cmd.Flags().BoolVar(&majorOnly, "major", false, "only print major ticks")
	return cmd
}

func writeTicks(out io.Writer, a *axis.Axis, m *axis.Mapper, majorOnly bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VALUE\tPIXEL\tKIND\tLABEL")
	for _, t := range a.Ticks() {
		if !t.Enabled || (majorOnly && !t.Major) {
			continue
		}
		kind := "minor"
		if t.Major {
			kind = "major"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			strconv.FormatFloat(t.Value, 'g', -1, 64),
			strconv.FormatFloat(m.DomainToPixel(t.Value), 'f', 1, 64),
			kind,
			t.Label,
		)
	}
	return tw.Flush()
}
