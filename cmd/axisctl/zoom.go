// Copyright ©2025 The go-pdf Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	axis "github.com/kofi-q/axis-go"
)

// frameInterval is the simulated frame clock period of animated replays.
const frameInterval = time.Second / 60

func zoomCmd(opts *options) *cobra.Command {
	var (
		factor  float64
		anchor  string
		pan     float64
		animate bool
		ticks   bool
	)

	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Apply a zoom and pan to the configured range and print each change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			epoch := time.Unix(0, 0)
			opts.clock = func() time.Time { return epoch }

			a, cfg, err := opts.loadAxis()
			if err != nil {
				return err
			}

			at := a.Range().Center()
			if anchor != "" {
				v, err := parseValue(a.Domain(), anchor, cfg.Categories)
				if err != nil {
					return err
				}
				at = v.Coord()
			}

			out := cmd.OutOrStdout()
			a.Subscribe(axis.ObserverFuncs{
				OnRangeChanged: func(c axis.Change) {
					fmt.Fprintf(out, "%s\t%s -> %s\n", c.Cause, c.Old, c.New)
				},
				OnAnimationFinished: func(name string) {
					fmt.Fprintf(out, "finished %s\n", name)
				},
			})

			target, err := a.ZoomedRange(factor, at)
			if err != nil {
				return err
			}
			if err := a.SetRange(target.Shift(pan), animate); err != nil {
				return err
			}
			frame := time.Duration(1)
			for a.Advance(epoch.Add(frame * frameInterval)) {
				frame++
			}

			if !ticks {
				return nil
			}
			m, err := a.Mapper()
			if err != nil {
				return err
			}
			return writeTicks(out, a, m, false)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&factor, "factor", 1, "zoom factor; above 1 zooms in")
	f.StringVar(&anchor, "anchor", "", "domain value kept in place (default: range center)")
	f.Float64Var(&pan, "pan", 0, "domain distance to pan by after zooming")
	f.BoolVar(&animate, "animate", false, "animate the change and print every frame")
	f.BoolVar(&ticks, "ticks", false, "print the ticks of the resulting range")
	return cmd
}
