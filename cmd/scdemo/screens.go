package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/swapchain/screen"
)

var selected = screen.Invalid

var screensCmd = &cobra.Command{
	Use:   "screens",
	Short: "List project manager screen names",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		if selected.Valid() {
			fmt.Fprintf(out, "%d\t%s\n", int(selected), selected)
			return
		}
		for _, name := range screen.Names() {
			fmt.Fprintf(out, "%d\t%s\n", int(screen.Parse(name)), name)
		}
	},
}

func init() {
	screensCmd.Flags().Var(&selected, "screen", "print only this screen")
}
