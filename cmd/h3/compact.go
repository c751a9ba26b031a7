// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	h3grid "github.com/cobbleworks/h3grid"
	"github.com/spf13/cobra"
)

// parseCells validates and converts a list of hex strings to H3Index
// values, in order.
func parseCells(args []string) ([]h3grid.H3Index, error) {
	cells := make([]h3grid.H3Index, len(args))
	for i, a := range args {
		cell := h3grid.StringToH3(a)
		if !h3grid.H3IsValid(cell) {
			return nil, fmt.Errorf("invalid cell index %q", a)
		}
		cells[i] = cell
	}
	return cells, nil
}

func newCompactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact <hex...>",
		Short: "Replace a set of cells with their compacted form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := parseCells(args)
			if err != nil {
				return err
			}

			compacted, err := h3grid.Compact(cells)
			if err != nil {
				return err
			}
			for _, c := range compacted {
				fmt.Println(h3grid.H3ToString(c))
			}
			return nil
		},
	}
	return cmd
}

func newUncompactCmd() *cobra.Command {
	var res int

	cmd := &cobra.Command{
		Use:   "uncompact <hex...>",
		Short: "Expand a compacted set of cells to a uniform resolution",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cells, err := parseCells(args)
			if err != nil {
				return err
			}

			uncompacted, err := h3grid.Uncompact(cells, res)
			if err != nil {
				return err
			}
			for _, c := range uncompacted {
				fmt.Println(h3grid.H3ToString(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&res, "res", "r", 9, "target resolution")
	return cmd
}
