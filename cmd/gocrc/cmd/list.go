package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nickolajgrishuk/gocrc/crc"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogue entries",
	Run:   runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("%-22s %5s %-18s %-18s %s\n", "NAME", "WIDTH", "POLY", "INIT", "REFIN/REFOUT")

	for _, name := range crc.Names() {
		c, _ := crc.ByName(name)
		p := c.Params()
		fmt.Printf("%-22s %5d %#018x %#018x %v/%v\n",
			p.Name, p.Width, p.Poly, p.Init, p.RefIn, p.RefOut)
	}
}
