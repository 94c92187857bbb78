/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/deltae/image"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "deltae",
	Short: "Perceptual color difference between colors or images",
	Long: `deltae computes the CIE76 color difference (delta E) between two sRGB
colors or two sRGB images viewed under illuminant D65.

Colors are given in B,G,R order as digital counts, e.g.

  deltae colors 204,127,51 32,200,207
  deltae images lenna.tif lenna_blurred.tif --map diff.png`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.deltae.yaml)")
	pf.Float64("max-count", 0, "largest digital count a component may take on (0 derives it from --bits)")
	pf.Int("bits", 8, "bit depth of the input data (8 or 16)")
	pf.StringP("format", "f", "text", "output format (text or json)")
	pf.String("template", "", "pongo2 template for text output")
	pf.CountP("verbose", "v", "log progress to stderr (repeat for more)")

	for _, key := range []string{"max-count", "bits", "format", "template", "verbose"} {
		viper.BindPFlag(key, pf.Lookup(key))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".deltae")
	}

	viper.SetEnvPrefix("deltae")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger().V(1).Info("using config file", "path", viper.ConfigFileUsed())
	}
}

func logger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
		} else {
			fmt.Fprintln(os.Stderr, args)
		}
	}, funcr.Options{Verbosity: viper.GetInt("verbose")}).WithName("deltae")
}

// maxCount returns --max-count, or the largest count of --bits when it is
// unset. --bits is checked either way.
func maxCount() (float64, error) {
	m, e := image.MaxCount(viper.GetInt("bits"))
	if e != nil {
		return 0, e
	}
	if mc := viper.GetFloat64("max-count"); mc != 0 {
		return mc, nil
	}
	return m, nil
}
