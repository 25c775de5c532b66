package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var verifyExpect string

var verifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify a file's CRC against an expected value or a trailing checksum",
	Long: "Verify a file's CRC. With --expect, compares the computed checksum\n" +
		"against the given hex value. Without it, the file is treated as a\n" +
		"message with its own CRC appended as a trailer, and the residue\n" +
		"method (gocrc/crc's IsValidBytes) checks internal consistency.",
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVarP(&sumAlgoName, "name", "n", "CRC-32/ISO-HDLC", "catalogue entry to use, see 'gocrc list'")
	verifyCmd.Flags().IntVar(&sumLanes, "lanes", 8, "slice-by-N lane count")
	verifyCmd.Flags().BoolVar(&sumParallel, "parallel", false, "split large inputs across workers")
	verifyCmd.Flags().IntVar(&sumWorkers, "workers", 0, "worker count for --parallel (0 = GOMAXPROCS)")
	verifyCmd.Flags().StringVar(&verifyExpect, "expect", "", "expected checksum as hex, e.g. 0xcbf43926")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	c, algo, err := resolveAlgo()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var ok bool
	var got string
	if verifyExpect != "" {
		want, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(verifyExpect), "0x"), 16, 64)
		if err != nil {
			return fmt.Errorf("invalid --expect value %q: %w", verifyExpect, err)
		}
		got = formatChecksum(c, algo, data)
		ok = c.Compute(algo, data) == want
	} else {
		ok = c.IsValidBytes(algo, data)
		got = "residue check"
	}

	if ok {
		color.New(color.FgGreen, color.Bold).Printf("PASS")
		fmt.Printf("  %s  %s (%s)\n", args[0], sumAlgoName, got)
		return nil
	}

	color.New(color.FgRed, color.Bold).Printf("FAIL")
	fmt.Printf("  %s  %s (%s)\n", args[0], sumAlgoName, got)
	return fmt.Errorf("checksum mismatch")
}
