// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	axis "github.com/kofi-q/axis-go"
	"github.com/kofi-q/axis-go/plotaxis"
)

func previewCmd(opts *options) *cobra.Command {
	var (
		out           string
		width, height float64
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the axis, its skips and ticks to an image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := opts.loadAxis()
			if err != nil {
				return err
			}
			if err := plotaxis.Save(a, vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, out); err != nil {
				return fmt.Errorf("unable to render preview: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "axis.png", "output file; the extension selects the format")
	f.Float64Var(&width, "width", 16, "image width in centimetres")
	f.Float64Var(&height, "height", 4, "image height in centimetres")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init PATH",
		Short: "Write a default axis config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := axis.DefaultConfig()
			if err := cfg.Save(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}
}
