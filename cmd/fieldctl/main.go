package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ANIKETSHETTY47/energy-field-operations/internal/config"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/fixtures"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/navigation"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/service"
	"github.com/ANIKETSHETTY47/energy-field-operations/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var source string

	rootCmd := &cobra.Command{
		Use:           "fieldctl",
		Short:         "Inspect energy field operations screens from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(); err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			zerolog.SetGlobalLevel(config.LogLevel())
			if source != "" {
				config.SetDataSource(source)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&source, "source", "", "Data source (mock, postgres, dynamodb, s3); overrides DATA_SOURCE")

	rootCmd.AddCommand(sitesCmd())
	rootCmd.AddCommand(ticketsCmd())
	rootCmd.AddCommand(statsCmd())
	rootCmd.AddCommand(siteCmd())
	rootCmd.AddCommand(navigateCmd())
	rootCmd.AddCommand(exportCmd())
	return rootCmd
}

// withServices opens the configured snapshot for the duration of fn.
func withServices(cmd *cobra.Command, fn func(*service.Services) error) error {
	svcs, err := service.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer svcs.Close()
	return fn(svcs)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sitesCmd() *cobra.Command {
	var query, status string

	cmd := &cobra.Command{
		Use:   "sites",
		Short: "List sites matching a search and status filter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(s *service.Services) error {
				return printJSON(cmd.OutOrStdout(), s.Screens.Sites(query, status))
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Match name or location")
	cmd.Flags().StringVar(&status, "status", "all", "Site status or all")
	return cmd
}

func ticketsCmd() *cobra.Command {
	var query, status, priority string

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "List tickets matching a search, status and priority",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(s *service.Services) error {
				return printJSON(cmd.OutOrStdout(), s.Screens.Tickets(query, status, priority))
			})
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Match title")
	cmd.Flags().StringVar(&status, "status", "all", "Ticket status or all")
	cmd.Flags().StringVar(&priority, "priority", "all", "Ticket priority or all")
	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show fleet statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(s *service.Services) error {
				return printJSON(cmd.OutOrStdout(), s.Screens.Statistics())
			})
		},
	}
}

func siteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "site [id]",
		Short: "Show one site with its assets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd, func(s *service.Services) error {
				v := s.Screens.SiteDetails(args[0])
				if !v.Found {
					return fmt.Errorf("site %q: %w", args[0], store.ErrNotFound)
				}
				return printJSON(cmd.OutOrStdout(), v)
			})
		},
	}
}

func navigateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "navigate [destination] [key=value...]",
		Short: "Validate a navigation request and print its screen path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := navigation.Request{Destination: navigation.Destination(args[0])}
			for _, kv := range args[1:] {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return fmt.Errorf("invalid parameter %q, want key=value", kv)
				}
				if req.Params == nil {
					req.Params = map[string]string{}
				}
				req.Params[k] = v
			}

			r, err := navigation.Parse(req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), struct {
				navigation.Request
				Path string `json:"path"`
			}{navigation.Encode(r), navigation.Path(r)})
		},
	}
}

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the embedded fixtures as a JSON snapshot",
		Long: `Writes the embedded fixture set in the document shape the s3 data
source reads, e.g. fieldctl export > latest.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := fixtures.NewStatic().Document()
			if err != nil {
				return err
			}
			return fixtures.Export(cmd.OutOrStdout(), doc)
		},
	}
}
