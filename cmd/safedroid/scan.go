package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/safedroid/safedroid/internal/config"
	"github.com/safedroid/safedroid/internal/scanapi"
)

var scanCmd = &cobra.Command{
	Use:   "scan <app-name>",
	Short: "Scan a single app and print its risk assessment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.OutOrStdout(), args[0])
	},
}

func runScan(out io.Writer, appName string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client, err := scanapi.New(cfg.ScanServiceURL)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := client.SubmitScan(ctx, appName)
	if err != nil {
		return err
	}

	printScanResult(out, result)
	return nil
}

func printScanResult(out io.Writer, result scanapi.ScanResult) {
	fmt.Fprintf(out, "App:         %s\n", result.AppName)
	fmt.Fprintf(out, "Risk score:  %d\n", result.RiskScore)
	fmt.Fprintf(out, "Risk level:  %s\n", result.RiskLevel)
	fmt.Fprintf(out, "Permissions: %s\n", strings.Join(result.ExtractedPermissions, ", "))
	if result.TrustedPublisher {
		fmt.Fprintln(out, "Publisher:   trusted")
	}
	if len(result.Explanations) > 0 {
		fmt.Fprintln(out, "Warnings:")
		for _, explanation := range result.Explanations {
			fmt.Fprintf(out, "  - %s\n", explanation)
		}
	}
	if len(result.DangerousCombinations) > 0 {
		fmt.Fprintln(out, "Dangerous combinations:")
		for _, combo := range result.DangerousCombinations {
			fmt.Fprintf(out, "  - %s\n", combo)
		}
	}
}
