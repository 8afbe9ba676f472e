package main

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/notesweep/internal/types"
)

type (
	// DeleteInput contains parameters for deleting a note or tag.
	DeleteInput struct {
		ID      *types.Identifier `json:"id"`
		Confirm string            `json:"confirm"`
	}

	// DeleteOutput contains the result of a deletion request.
	DeleteOutput struct {
		Success   bool   `json:"success"`
		Endpoint  string `json:"endpoint"`
		Status    int    `json:"status,omitempty"`
		Location  string `json:"location,omitempty"`
		RequestID string `json:"requestId,omitempty"`
	}
)

// deleteInputSchema is declared by hand: ids may be strings or numbers, and
// numbers must reach the handler as raw JSON rather than as float64.
func deleteInputSchema(kind types.EntityKind) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id": {
				Types:       []string{"string", "number"},
				Description: "Identifier of the " + kind.String() + ", as a string or number",
			},
			"confirm": {
				Type:        "string",
				Description: "Must be set to 'yes' to confirm deletion",
			},
		},
		Required: []string{"id", "confirm"},
	}
}

func registerTools(server *mcp.Server) {
	server.AddTool(&mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note on the notes server by POSTing its id to /delete-note. Requires confirm='yes'. The server's status is reported but not interpreted; location is where the page navigates afterwards.",
		InputSchema: deleteInputSchema(types.Note),
	}, handleDeleteNote)

	server.AddTool(&mcp.Tool{
		Name:        "delete_tag",
		Description: "Delete a tag on the notes server by POSTing its id to /delete-tag. Requires confirm='yes'. The server's status is reported but not interpreted; location is where the page navigates afterwards.",
		InputSchema: deleteInputSchema(types.Tag),
	}, handleDeleteTag)
}
