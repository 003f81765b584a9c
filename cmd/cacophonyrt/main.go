// Command cacophonyrt runs the reference demo scenarios against
// internal/gc and reports their outcome, the way a small integration
// harness for a real runtime would.
package main

import (
	"fmt"
	"os"

	"github.com/mhorod/cacophony/internal/demo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cacophonyrt",
		Short: "Exercise the Cacophony garbage collector against reference scenarios",
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logrus level: debug, info, warn, error")

	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	return root
}

func newLogger() *logrus.Entry {
	l := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)
	return logrus.NewEntry(l)
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range demo.All() {
				fmt.Println(s().Scenario)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run every reference scenario and print its checks",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger()
			log.Info("cacophonyrt: starting scenarios")

			failed := 0
			for _, scenario := range demo.All() {
				report := scenario()
				fmt.Print(report.String())
				if !report.Passed() {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d scenario(s) failed", failed)
			}
			return nil
		},
	}
}
