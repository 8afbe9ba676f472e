package main

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/taigrr/notesweep/internal/deletion"
	"github.com/taigrr/notesweep/internal/navigation"
)

var (
	requester   *deletion.Requester
	pageHistory *navigation.History
)

func newServeCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server exposing delete_note and delete_tag",
		Long: `serve runs a Model Context Protocol server on stdio. Each tool call
sends one deletion request to the configured notes server. Logs go to stderr.`,
		Example: "notesweep serve --addr https://notes.example.com --cookie 'session=...'",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd, f)
		},
	}
}

func newMCPServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "notesweep",
		Version: version,
	}, nil)

	registerTools(server)
	return server
}

func runServer(cmd *cobra.Command, f *flags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	pageHistory = navigation.NewHistory()
	requester, err = newRequester(cmd, cfg, pageHistory)
	if err != nil {
		return err
	}

	if err := newMCPServer().Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	return nil
}
