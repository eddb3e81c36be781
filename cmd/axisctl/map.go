// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	axis "github.com/kofi-q/axis-go"
)

func mapCmd(opts *options) *cobra.Command {
	var inverse bool

	cmd := &cobra.Command{
		Use:   "map VALUE...",
		Short: "Map domain values to pixel offsets, or pixels back with --inverse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := opts.loadAxis()
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

			out := cmd.OutOrStdout()
			for _, arg := range args {
				if inverse {
					p, err := strconv.ParseFloat(arg, 64)
					if err != nil {
						return fmt.Errorf("invalid pixel offset %q", arg)
					}
					v := m.PixelToDomain(p)
					fmt.Fprintf(out, "%s\t%s\n", arg, valueString(a.Domain(), v))
					continue
				}
				v, err := parseValue(a.Domain(), arg, cfg.Categories)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\t%s\n", arg,
					strconv.FormatFloat(m.DomainToPixel(v.Coord()), 'f', 2, 64))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inverse, "inverse", false, "map pixel offsets to domain values")
	return cmd
}

func valueString(d axis.Domain, c float64) string {
	switch d {
	case axis.DomainInstant:
		return axis.Instant(axis.Number(c).Time()).String()
	case axis.DomainCategory:
		return axis.Category(axis.Number(c).Index()).String()
	}
	return strconv.FormatFloat(c, 'g', -1, 64)
}
