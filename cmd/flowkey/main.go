package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/flowkey/pkg/catalog"
	"github.com/saylorsolutions/flowkey/pkg/keyfunc"
	"github.com/saylorsolutions/flowkey/runtime"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		verbose bool
		log     hclog.Logger
	)
	root := &cobra.Command{
		Use:   "flowkey",
		Short: "Parse and validate flow-key definitions",
		Long: `flowkey parses the one-line DSL used to describe how traffic records are
grouped into flows, turning a definition like

  ipdestination,group:[country:ip6source]:trusted:bad

into a validated structure, or a precise parse error with its offset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := hclog.Info
			if verbose {
				level = hclog.Debug
			}
			log = hclog.New(&hclog.LoggerOptions{Name: "flowkey", Level: level})
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	repl := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive parse-key shell",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runtime.NewSession(log, nil).Repl(cmd.Context(), os.Stdin, os.Stdout)
		},
	}

	parse := &cobra.Command{
		Use:   "parse DEFINITION",
		Short: "Parse a single key definition and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := runtime.NewSession(log, nil)
			def, err := s.Parse(args[0])
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Invalid key definition: %v\n", err)
				return err
			}
			rendered, err := s.Render(def)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	vet := &cobra.Command{
		Use:   "vet FILE",
		Short: "Validate every definition in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runtime.NewSession(log, nil).VetFile(args[0]); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Vet failed: %v\n", err)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All definitions are valid")
			return nil
		},
	}

	watch := &cobra.Command{
		Use:   "watch FILE",
		Short: "Follow a definitions file, validating appended lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err := runtime.NewSession(log, nil).WatchFile(ctx, args[0])
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	keys := &cobra.Command{
		Use:   "keys",
		Short: "List the key names the catalog recognizes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range catalog.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	functions := &cobra.Command{
		Use:   "functions",
		Short: "List the registered key functions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), keyfunc.Default().AllDocs())
		},
	}

	root.AddCommand(repl, parse, vet, watch, keys, functions)
	return root
}
