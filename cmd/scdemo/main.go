// Command scdemo drives a swap chain through its lifecycle on one of the
// registered platform backends.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/gogpu/swapchain/platform/noop"
)

var (
	version = "0.1.0"
	cfgFile string
	backend string
)

var rootCmd = &cobra.Command{
	Use:           "scdemo",
	Short:         "Swap chain presentation demo",
	Long:          `scdemo creates a swap chain, presents frames, resizes it and reports what the platform did.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scdemo v%s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./scdemo.yaml)")
	rootCmd.PersistentFlags().StringVar(&backend, "backend", "", "platform backend (overrides config)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(probeCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(screensCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "scdemo:", err)
		os.Exit(1)
	}
}
