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
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Grid traversal: disk, distance, and path",
	}

	cmd.AddCommand(
		newGridDiskCmd(),
		newGridDistanceCmd(),
		newGridPathCmd(),
	)

	return cmd
}

func newGridDiskCmd() *cobra.Command {
	var k int
	var safe bool

	cmd := &cobra.Command{
		Use:   "disk <cell>",
		Short: "Print every cell within k grid steps of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			origin := h3grid.StringToH3(args[0])
			if !h3grid.H3IsValid(origin) {
				return fmt.Errorf("invalid cell index %q", args[0])
			}

			var cells []h3grid.H3Index
			if safe {
				cells, _ = h3grid.GridDiskSafe(origin, k)
			} else {
				cells, _ = h3grid.GridDiskDistances(origin, k)
			}

			log.Debug().Int("k", k).Bool("safe", safe).Int("count", len(cells)).Msg("grid disk")
			for _, c := range cells {
				if c == h3grid.H3_NULL {
					continue
				}
				fmt.Println(h3grid.H3ToString(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 1, "number of grid steps")
	cmd.Flags().BoolVar(&safe, "safe", false, "use the slower, pentagon-exact BFS instead of the spiral walk")
	return cmd
}

func newGridDistanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance <cellA> <cellB>",
		Short: "Print the grid distance between two cells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := h3grid.StringToH3(args[0])
			b := h3grid.StringToH3(args[1])
			if !h3grid.H3IsValid(a) || !h3grid.H3IsValid(b) {
				return fmt.Errorf("invalid cell index")
			}

			dist := h3grid.H3Distance(a, b)
			if dist < 0 {
				return fmt.Errorf("cells are not in the same connected grid region")
			}
			fmt.Println(dist)
			return nil
		},
	}
	return cmd
}

func newGridPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <cellA> <cellB>",
		Short: "Print the shortest grid path between two cells, inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := h3grid.StringToH3(args[0])
			b := h3grid.StringToH3(args[1])
			if !h3grid.H3IsValid(a) || !h3grid.H3IsValid(b) {
				return fmt.Errorf("invalid cell index")
			}

			var path []h3grid.H3Index
			if h3grid.H3Line(a, b, &path) != 0 {
				return fmt.Errorf("could not compute a path between the given cells")
			}
			for _, c := range path {
				fmt.Println(h3grid.H3ToString(c))
			}
			return nil
		},
	}
	return cmd
}
