// Package cmd provides the command-line interface for vmsim.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	policyName  string
	quiet       bool
	recordPath  string
	record      bool
	monitorOn   bool
	monitorPort int
	openBrowser bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vmsim <backing-store> <trace>",
	Short: "vmsim simulates demand-paged virtual to physical address translation.",
	Long:  `vmsim resolves the logical addresses of a trace file to physical ` +
		`addresses using a TLB backed by a page table, loading pages from a ` +
		`backing store into a fixed pool of frames and evicting frames with ` +
		`a FIFO or LRU replacement policy when the pool is exhausted.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	RunE: func(_ *cobra.Command, args []string) error {
		return runSimulation(args[0], args[1])
	},
}

// Execute runs the root command. Exits go through atexit so that registered
// cleanups, such as recorder flushes, still run.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		atexit.Exit(1)
	}
}

func init() {
	// A .env file can provide defaults for the flags below.
	_ = godotenv.Load()

	rootCmd.Flags().StringVarP(&policyName, "policy", "p",
		envOr("VMSIM_POLICY", "FIFO"),
		"frame replacement policy, FIFO or LRU")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress per-address output, only print the summary")
	rootCmd.Flags().BoolVar(&record, "record", false,
		"record translations and the summary into a SQLite database")
	rootCmd.Flags().StringVar(&recordPath, "record-path", "",
		"database name to record into, generated when empty")
	rootCmd.Flags().BoolVar(&monitorOn, "monitor", false,
		"serve live run statistics over HTTP")
	rootCmd.Flags().IntVar(&monitorPort, "monitor-port",
		envIntOr("VMSIM_MONITOR_PORT", 0),
		"port for the monitoring server, random when 0")
	rootCmd.Flags().BoolVar(&openBrowser, "open-browser", false,
		"open the monitoring page in a browser")
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}

	return fallback
}

func envIntOr(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ignoring %s=%q: not a number\n", key, v)
		return fallback
	}

	return n
}
