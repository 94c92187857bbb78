/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/deltae/deltae"
	"github.com/mmuldo/deltae/image"
	"github.com/mmuldo/deltae/report"
)

// imagesCmd represents the images command
var imagesCmd = &cobra.Command{
	Use:   "images BASELINE TARGET",
	Short: "Per-pixel delta E between two images",
	Long: `Computes the delta E of every pixel of two images of the same size and
reports the average. With --map the per-pixel values are written as a
grayscale PNG.`,
	Args:    cobra.ExactArgs(2),
	PreRunE: bindMapFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		bits := viper.GetInt("bits")
		a1, e := loadArray(args[0], bits)
		if e != nil {
			return e
		}
		a2, e := loadArray(args[1], bits)
		if e != nil {
			return e
		}

		m, e := maxCount()
		if e != nil {
			return e
		}
		r, e := deltae.Compute(a1, a2, m)
		if e != nil {
			return e
		}

		rep := report.FromResult(r, args, m)
		if e = saveMap(r, rep); e != nil {
			return e
		}
		return writeReport(cmd, rep)
	},
}

func init() {
	rootCmd.AddCommand(imagesCmd)

	addMapFlags(imagesCmd)
}

func addMapFlags(cmd *cobra.Command) {
	cmd.Flags().String("map", "", "write the delta E map to this PNG file")
	cmd.Flags().Float64("map-scale", 0, "delta E shown as white in the map (0 uses the maximum)")
}

// bindMapFlags binds the map flags of the running command. Several
// commands define them, so they cannot be bound once in init.
func bindMapFlags(cmd *cobra.Command, args []string) error {
	if e := viper.BindPFlag("map", cmd.Flags().Lookup("map")); e != nil {
		return e
	}
	return viper.BindPFlag("map-scale", cmd.Flags().Lookup("map-scale"))
}

func loadArray(path string, bits int) (*deltae.Array, error) {
	i, e := image.Load(path)
	if e != nil {
		return nil, e
	}

	b := i.Bounds()
	logger().V(1).Info("loaded image", "path", path, "width", b.Dx(), "height", b.Dy())

	a, e := image.ToArray(i, bits)
	if e != nil {
		return nil, fmt.Errorf("%s: %w", path, e)
	}
	return a, nil
}

// saveMap writes the map of r to --map, if set, and records the path.
func saveMap(r deltae.Result, rep *report.Report) error {
	path := viper.GetString("map")
	if path == "" {
		return nil
	}

	d, ok := r.(*deltae.ImageDiff)
	if !ok {
		logger().Info("single pixel result, not writing a map", "path", path)
		return nil
	}

	if e := image.SaveMap(path, d.Map, viper.GetFloat64("map-scale")); e != nil {
		return e
	}
	logger().V(1).Info("wrote delta E map", "path", path)
	rep.Map = path
	return nil
}
