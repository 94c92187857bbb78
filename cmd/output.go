package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/deltae/report"
)

func writeReport(cmd *cobra.Command, r *report.Report) error {
	switch f := viper.GetString("format"); f {
	case "json":
		return report.WriteJSON(cmd.OutOrStdout(), r)
	case "text", "":
		return report.Render(cmd.OutOrStdout(), r, viper.GetString("template"))
	default:
		return fmt.Errorf("'%s' is not a supported format", f)
	}
}
