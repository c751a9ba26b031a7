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

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Convert and inspect individual cell indexes",
	}

	cmd.AddCommand(
		newIndexToCellCmd(),
		newIndexToLatLngCmd(),
		newIndexParentCmd(),
		newIndexChildrenCmd(),
		newIndexBoundaryCmd(),
	)

	return cmd
}

func newIndexToCellCmd() *cobra.Command {
	var res int
	var lat, lng float64

	cmd := &cobra.Command{
		Use:   "to-cell",
		Short: "Convert a latitude/longitude pair to a cell index at the given resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := h3grid.NewLatLngFromDegrees(lat, lng)
			if err != nil {
				return err
			}

			cell := h3grid.GeoToH3(&g, res)
			log.Debug().Float64("lat", lat).Float64("lng", lng).Int("res", res).Msg("resolved cell")
			fmt.Println(h3grid.H3ToString(cell))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&lng, "lng", 0, "longitude in decimal degrees")
	cmd.Flags().IntVarP(&res, "res", "r", 9, "resolution (0-15)")
	return cmd
}

func newIndexToLatLngCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-latlng <cell>",
		Short: "Convert a cell index to its center latitude/longitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell := h3grid.StringToH3(args[0])
			if !h3grid.H3IsValid(cell) {
				return fmt.Errorf("invalid cell index %q", args[0])
			}

			var g h3grid.GeoCoord
			h3grid.H3ToGeo(cell, &g)
			fmt.Printf("%.6f,%.6f\n", h3grid.RadsToDegs(g.Lat()), h3grid.RadsToDegs(g.Lon()))
			return nil
		},
	}
	return cmd
}

func newIndexParentCmd() *cobra.Command {
	var res int

	cmd := &cobra.Command{
		Use:   "parent <cell>",
		Short: "Print the ancestor of a cell at the given resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell := h3grid.StringToH3(args[0])
			if !h3grid.H3IsValid(cell) {
				return fmt.Errorf("invalid cell index %q", args[0])
			}

			parent := h3grid.H3ToParent(cell, res)
			if parent == h3grid.H3_NULL {
				return fmt.Errorf("no parent at resolution %d", res)
			}
			fmt.Println(h3grid.H3ToString(parent))
			return nil
		},
	}

	cmd.Flags().IntVarP(&res, "res", "r", 0, "ancestor resolution")
	return cmd
}

func newIndexChildrenCmd() *cobra.Command {
	var res int

	cmd := &cobra.Command{
		Use:   "children <cell>",
		Short: "Print every descendant of a cell at the given resolution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell := h3grid.StringToH3(args[0])
			if !h3grid.H3IsValid(cell) {
				return fmt.Errorf("invalid cell index %q", args[0])
			}

			var children []h3grid.H3Index
			h3grid.H3ToChildren(cell, res, &children)
			log.Debug().Int("count", len(children)).Msg("expanded children")
			for _, c := range children {
				fmt.Println(h3grid.H3ToString(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&res, "res", "r", 10, "child resolution")
	return cmd
}

func newIndexBoundaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boundary <cell>",
		Short: "Print a cell's boundary as one latitude,longitude pair per vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cell := h3grid.StringToH3(args[0])
			if !h3grid.H3IsValid(cell) {
				return fmt.Errorf("invalid cell index %q", args[0])
			}

			var gb h3grid.GeoBoundary
			h3grid.H3ToGeoBoundary(cell, &gb)
			for _, v := range gb.Vertices() {
				fmt.Printf("%.6f,%.6f\n", h3grid.RadsToDegs(v.Lat()), h3grid.RadsToDegs(v.Lon()))
			}
			return nil
		},
	}
	return cmd
}
