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
	"strconv"
	"strings"

	h3grid "github.com/cobbleworks/h3grid"
	"github.com/spf13/cobra"
)

// parseLonLatPairs parses a ring given as "lon,lat" positional args (the
// order GeoJSON uses) into a GeoCoord ring.
func parseLonLatPairs(pairs []string) ([]h3grid.GeoCoord, error) {
	ring := make([]h3grid.GeoCoord, len(pairs))
	for i, p := range pairs {
		parts := strings.SplitN(p, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("expected \"lon,lat\", got %q", p)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing lon: %w", err)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing lat: %w", err)
		}
		g, err := h3grid.NewLatLngFromDegrees(lat, lng)
		if err != nil {
			return nil, err
		}
		ring[i] = g
	}
	return ring, nil
}

func parseContainmentMode(mode string) (h3grid.ContainmentMode, error) {
	switch mode {
	case "centroid":
		return h3grid.ContainmentCentroid, nil
	case "intersects":
		return h3grid.ContainmentIntersectsBoundary, nil
	case "contains":
		return h3grid.ContainmentContainsBoundary, nil
	default:
		return 0, fmt.Errorf("unknown containment mode %q", mode)
	}
}

func newPolyfillCmd() *cobra.Command {
	var res int
	var mode string
	var holeArgs []string

	cmd := &cobra.Command{
		Use:   "polyfill <lon,lat...>",
		Short: "Fill the polygon given by a ring of lon,lat pairs with cells",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			containment, err := parseContainmentMode(mode)
			if err != nil {
				return err
			}

			outer, err := parseLonLatPairs(args)
			if err != nil {
				return err
			}

			fence := &h3grid.Geofence{Outer: outer}
			for _, h := range holeArgs {
				hole, err := parseLonLatPairs(strings.Split(h, " "))
				if err != nil {
					return err
				}
				fence.Holes = append(fence.Holes, hole)
			}

			cells, err := h3grid.Polyfill(fence, res, containment)
			if err != nil {
				return err
			}
			for _, c := range cells {
				fmt.Println(h3grid.H3ToString(c))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&res, "res", "r", 9, "resolution")
	cmd.Flags().StringVarP(&mode, "mode", "m", "centroid", "containment mode: centroid, intersects, contains")
	cmd.Flags().StringArrayVar(&holeArgs, "hole", nil, "a hole ring as space-separated lon,lat pairs; may be repeated")
	return cmd
}
