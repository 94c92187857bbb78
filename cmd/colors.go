/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmuldo/deltae/deltae"
	"github.com/mmuldo/deltae/report"
)

// colorsCmd represents the colors command
var colorsCmd = &cobra.Command{
	Use:   "colors B,G,R B,G,R",
	Short: "Delta E between two color triplets",
	Long: `Computes the delta E between two colors given as comma separated
B,G,R digital counts, e.g. 204,127,51.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c1, e := parseColor(args[0])
		if e != nil {
			return e
		}
		c2, e := parseColor(args[1])
		if e != nil {
			return e
		}

		m, e := maxCount()
		if e != nil {
			return e
		}
		logger().V(1).Info("comparing colors", "color1", args[0], "color2", args[1], "maxCount", m)

		r, e := deltae.Compute(c1, c2, m)
		if e != nil {
			return e
		}

		return writeReport(cmd, report.FromResult(r, args, m))
	},
}

func init() {
	rootCmd.AddCommand(colorsCmd)
}

// parseColor reads comma separated values into a vector. The length is
// checked by the calculator, not here.
func parseColor(s string) (*deltae.Array, error) {
	fields := strings.Split(s, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, e := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if e != nil {
			return nil, fmt.Errorf("color %q: %w", s, e)
		}
		values[i] = v
	}
	return deltae.Vector(values...), nil
}
