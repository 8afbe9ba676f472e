// Package main implements the notesweep command and its MCP server.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/notesweep/internal/config"
	"github.com/taigrr/notesweep/internal/deletion"
	"github.com/taigrr/notesweep/internal/navigation"
	"github.com/taigrr/notesweep/internal/types"
)

type flags struct {
	configPath      string
	addr            string
	cookie          string
	headers         map[string]string
	asString        bool
	omitContentType bool
	debug           bool
}

func main() {
	if err := fang.Execute(
		context.Background(),
		newRootCmd(),
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "notesweep",
		Short: "Delete notes and tags on a notes server",
		Long: `notesweep sends note and tag deletion requests to a notes web app,
the same way its pages do: a JSON POST to /delete-note or /delete-tag,
followed by navigation to / or /tags once the server answers.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/notesweep/config.yaml)")
	pf.StringVar(&f.addr, "addr", "", "Base URL of the notes server")
	pf.StringVar(&f.cookie, "cookie", "", "Session cookie to send with each request")
	pf.StringToStringVar(&f.headers, "header", nil, "Extra request header as key=value (repeatable)")
	pf.BoolVar(&f.omitContentType, "omit-content-type", false, "Do not send Content-Type: application/json")
	pf.BoolVar(&f.debug, "debug", false, "Log requests to stderr")

	cmd.AddCommand(
		newDeleteCmd(f, types.Note),
		newDeleteCmd(f, types.Tag),
		newDeleteKindCmd(f),
		newServeCmd(f),
	)

	return cmd
}

func newDeleteCmd(f *flags, kind types.EntityKind) *cobra.Command {
	target, _ := kind.Target()

	cmd := &cobra.Command{
		Use:   kind.String() + " <id>",
		Short: fmt.Sprintf("Delete a %s via %s", kind, target.Endpoint),
		Example: fmt.Sprintf("notesweep %s 42\nnotesweep %s --string 42\nnotesweep %s -- -5",
			kind, kind, kind),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeletion(cmd, f, kind, args[0])
		},
	}
	cmd.Flags().BoolVar(&f.asString, "string", false, "Send the id as a JSON string even if it looks numeric")

	return cmd
}

func newDeleteKindCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "delete <note|tag> <id>",
		Short:     "Delete a note or tag",
		Example:   "notesweep delete note abc123\nnotesweep delete tag -- -5",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{types.Note.String(), types.Tag.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := types.ParseKind(args[0])
			if err != nil {
				return err
			}
			return runDeletion(cmd, f, kind, args[1])
		},
	}
	cmd.Flags().BoolVar(&f.asString, "string", false, "Send the id as a JSON string even if it looks numeric")

	return cmd
}

func runDeletion(cmd *cobra.Command, f *flags, kind types.EntityKind, arg string) error {
	id := types.ParseIdentifier(arg)
	if f.asString {
		id = types.StringID(arg)
	}

	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	client, err := newRequester(cmd, cfg, navigation.NewWriter(cmd.OutOrStdout(), cfg.Addr))
	if err != nil {
		return err
	}

	_, err = client.RequestDeletion(cmd.Context(), kind, id)
	return err
}

func newRequester(cmd *cobra.Command, cfg config.Config, nav navigation.Navigator) (*deletion.Requester, error) {
	opts := []deletion.Option{
		deletion.WithLogger(newLogger(cmd.ErrOrStderr(), cfg.Debug)),
		deletion.WithCookie(cfg.Cookie),
	}
	for k, v := range cfg.Headers {
		opts = append(opts, deletion.WithHeader(k, v))
	}
	if cfg.OmitContentType {
		opts = append(opts, deletion.WithoutContentType())
	}

	return deletion.New(cfg.Addr, nav, opts...)
}

// resolveConfig layers command-line flags over the file and environment settings.
func resolveConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	if f.addr != "" {
		cfg.Addr = f.addr
	}
	if f.cookie != "" {
		cfg.Cookie = f.cookie
	}
	if len(f.headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string)
		}
		for k, v := range f.headers {
			cfg.Headers[k] = v
		}
	}
	if cmd.Flags().Changed("omit-content-type") {
		cfg.OmitContentType = f.omitContentType
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = f.debug
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid server address: %w", err)
	}
	return cfg, nil
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
