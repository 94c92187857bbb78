/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/deltae/deltae"
	"github.com/mmuldo/deltae/image"
	"github.com/mmuldo/deltae/report"
)

// quantizeCmd represents the quantize command
var quantizeCmd = &cobra.Command{
	Use:   "quantize IMAGE",
	Short: "Delta E introduced by reducing an image to a palette",
	Long: `Quantizes an image to --colors colors and reports the delta E between
the original and the quantized image, followed by the --top most used
palette colors.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindMapFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		i, e := image.Load(args[0])
		if e != nil {
			return e
		}

		n := viper.GetInt("colors")
		q, e := image.Quantize(i, n)
		if e != nil {
			return e
		}
		logger().V(1).Info("quantized image", "path", args[0], "colors", n)

		bits := viper.GetInt("bits")
		a1, e := image.ToArray(i, bits)
		if e != nil {
			return e
		}
		a2, e := image.ToArray(q, bits)
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
		rep.Kind = report.KindQuantize
		rep.Palette = palette(image.RankColors(image.GetColors(q)), viper.GetInt("top"))

		if e = saveMap(r, rep); e != nil {
			return e
		}
		return writeReport(cmd, rep)
	},
}

func init() {
	rootCmd.AddCommand(quantizeCmd)

	quantizeCmd.Flags().IntP("colors", "n", 16, "number of palette colors")
	quantizeCmd.Flags().Int("top", 8, "number of palette colors to list")
	addMapFlags(quantizeCmd)
	viper.BindPFlag("colors", quantizeCmd.Flags().Lookup("colors"))
	viper.BindPFlag("top", quantizeCmd.Flags().Lookup("top"))
}

func palette(ccl image.ColorCountList, top int) []report.PaletteEntry {
	if top < 0 || top > len(ccl) {
		top = len(ccl)
	}

	p := make([]report.PaletteEntry, top)
	for i, cc := range ccl[:top] {
		p[i] = report.PaletteEntry{Hex: report.Hex(cc.Color), Count: cc.Count}
	}
	return p
}
