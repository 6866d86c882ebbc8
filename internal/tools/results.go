package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/frosthollow/snowflake-mcp/internal/database"
)

// failurePayload is the structured failure value every tool returns on
// error. The kind lets clients distinguish a bad argument from a warehouse
// failure without parsing the message.
type failurePayload struct {
	Error failureDetail `json:"error"`
}

type failureDetail struct {
	Kind    database.Kind `json:"kind"`
	Message string        `json:"message"`
}

// ErrorResult converts err into an error tool result carrying the
// structured failure payload. Domain errors never cross the MCP boundary as
// transport faults.
func ErrorResult(err error) *mcp.CallToolResult {
	e := database.AsError(err)
	payload, marshalErr := json.MarshalIndent(failurePayload{
		Error: failureDetail{Kind: e.Kind, Message: e.Message},
	}, "", "  ")
	if marshalErr != nil {
		return mcp.NewToolResultError(e.Message)
	}
	return mcp.NewToolResultError(string(payload))
}

// JSONResult marshals v as an indented JSON text result.
func JSONResult(v any) (*mcp.CallToolResult, error) {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(payload)), nil
}
