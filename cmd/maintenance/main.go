package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - cleanup: Delete expired pending verifications
// - stats:   Print pending verification counts

func main() {
	cleanupCmd := flag.NewFlagSet("cleanup", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)

	// cleanup parameters
	cleanupForce := cleanupCmd.Bool("force", false, "Delete without asking for confirmation")
	cleanupDryRun := cleanupCmd.Bool("dry-run", false, "Only count expired records")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := maintenanceFlags{
		Cleanup: cleanupFlags{
			cmd:    cleanupCmd,
			force:  cleanupForce,
			dryRun: cleanupDryRun,
		},
		Stats: statsFlags{
			cmd: statsCmd,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type maintenanceFlags struct {
	Cleanup cleanupFlags
	Stats   statsFlags
}

type cleanupFlags struct {
	cmd    *flag.FlagSet
	force  *bool
	dryRun *bool
}

type statsFlags struct {
	cmd *flag.FlagSet
}

func runSubcommand(ctx context.Context, flags *maintenanceFlags) error {
	switch os.Args[1] {
	case "cleanup":
		return handleCleanup(ctx, flags)
	case "stats":
		return handleStats(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleCleanup(ctx context.Context, flags *maintenanceFlags) error {
	if err := flags.Cleanup.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse cleanup flags")
	}

	return withRegistry(ctx, func(reg registry) error {
		return runCleanup(ctx, reg, cleanupOptions{
			force:  *flags.Cleanup.force,
			dryRun: *flags.Cleanup.dryRun,
			in:     os.Stdin,
			out:    os.Stdout,
		})
	})
}

func handleStats(ctx context.Context, flags *maintenanceFlags) error {
	if err := flags.Stats.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse stats flags")
	}

	return withRegistry(ctx, func(reg registry) error {
		return runStats(ctx, reg, os.Stdout)
	})
}

func printUsage() {
	fmt.Println("Storefront Maintenance Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  maintenance <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  cleanup    Delete expired pending verifications")
	fmt.Println("  stats      Print pending verification counts")
	fmt.Println()
	fmt.Println("Cleanup options:")
	fmt.Println("  -force     Delete without asking for confirmation")
	fmt.Println("  -dry-run   Only count expired records")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  maintenance stats")
	fmt.Println("  maintenance cleanup -dry-run")
	fmt.Println("  maintenance cleanup -force")
}
