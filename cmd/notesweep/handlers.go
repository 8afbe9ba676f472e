package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/taigrr/notesweep/internal/types"
)

func handleDeleteNote(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(handleDeletion(ctx, types.Note, req.Params.Arguments)), nil
}

func handleDeleteTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(handleDeletion(ctx, types.Tag, req.Params.Arguments)), nil
}

// decodeDeleteInput reads tool arguments straight from the wire so numeric ids
// keep every digit.
func decodeDeleteInput(args json.RawMessage) (DeleteInput, error) {
	var input DeleteInput
	if len(args) == 0 {
		return input, fmt.Errorf("id is required")
	}

	dec := json.NewDecoder(bytes.NewReader(args))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return DeleteInput{}, fmt.Errorf("invalid arguments: %w", err)
	}
	if input.ID == nil {
		return DeleteInput{}, fmt.Errorf("id is required")
	}
	return input, nil
}

func handleDeletion(ctx context.Context, kind types.EntityKind, args json.RawMessage) (DeleteOutput, error) {
	target, err := kind.Target()
	if err != nil {
		return DeleteOutput{}, err
	}

	input, err := decodeDeleteInput(args)
	if err != nil {
		return DeleteOutput{Success: false, Endpoint: target.Endpoint}, err
	}

	if strings.TrimSpace(input.Confirm) != "yes" {
		return DeleteOutput{Success: false, Endpoint: target.Endpoint},
			fmt.Errorf("deletion not confirmed: set confirm='yes' to proceed")
	}

	result, err := requester.RequestDeletion(ctx, kind, *input.ID)
	if err != nil {
		return DeleteOutput{Success: false, Endpoint: target.Endpoint}, err
	}

	return DeleteOutput{
		Success:   true,
		Endpoint:  result.Endpoint,
		Status:    result.StatusCode,
		Location:  result.Location,
		RequestID: result.RequestID,
	}, nil
}

// toolResult reports errors in the result, not as protocol errors, so the
// model can see why a deletion was refused.
func toolResult(out DeleteOutput, err error) *mcp.CallToolResult {
	if err != nil {
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		}
	}

	text, _ := json.Marshal(out)
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: out,
	}
}
