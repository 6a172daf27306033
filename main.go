package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/entrakit/groupexport/export"
	"github.com/entrakit/groupexport/global"
	"github.com/entrakit/groupexport/graph"
	"github.com/entrakit/groupexport/prompt"
	"github.com/entrakit/groupexport/session"
)

var version = "0.0.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "groupexport",
		Short:         "Interactively export Microsoft 365 group members to CSV",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String(global.TenantId, "", "Microsoft Entra tenant ID")
	flags.String(global.ClientId, "", "application (client) ID")
	flags.String(global.ClientSecret, "", "client secret (prefer the "+global.ClientSecretEnv+" environment variable)")
	flags.String(global.LogLevel, "info", "one of trace, debug, info, warn or error")

	_ = viper.BindPFlags(flags)
	_ = viper.BindEnv(global.TenantId, global.TenantIdEnv)
	_ = viper.BindEnv(global.ClientId, global.ClientIdEnv)
	_ = viper.BindEnv(global.ClientSecret, global.ClientSecretEnv)

	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	global.SetLogLevel(viper.GetString(global.LogLevel))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	prompter := prompt.NewTerminal(os.Stdin, os.Stdout)

	cfg, err := preflight(prompter, os.Stdout)
	if err != nil {
		return err
	}

	manager := session.NewManager(cfg, prompter, os.Stdout)
	if err := manager.Connect(ctx); err != nil {
		return err
	}
	defer manager.Disconnect(true)

	driver := export.NewDriver(graph.NewClient(manager.Credential()), prompter, os.Stdout)

	return driver.Run(ctx)
}
