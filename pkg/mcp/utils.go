package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
)

// jsonResult serializes v as the tool's text content.
func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// jsonResultWithWarning is jsonResult for mutations that may have failed to save.
// Any error other than a persistence warning becomes a tool error.
func jsonResultWithWarning(v interface{}, err error, op string) *mcp.CallToolResult {
	if err == nil {
		return jsonResult(v)
	}
	var warn *diary.PersistenceWarning
	if !errors.As(err, &warn) {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to %s: %v", op, err))
	}
	res := jsonResult(v)
	if res.IsError {
		return res
	}
	res.Content = append(res.Content, mcp.NewTextContent("Warning: "+warn.Error()))
	return res
}

// stringArg returns the named argument if it is a non-empty string.
func stringArg(request mcp.CallToolRequest, name string) (string, bool) {
	v, ok := request.Params.Arguments[name].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// optionalMood resolves the "mood" argument. A missing mood yields nil.
func optionalMood(request mcp.CallToolRequest) (*moods.MoodTag, error) {
	v, ok := stringArg(request, "mood")
	if !ok {
		return nil, nil
	}
	m, err := moods.LookupMood(moods.MoodValue(v))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func moodValues() []string {
	all := moods.Moods()
	out := make([]string, len(all))
	for i, m := range all {
		out[i] = string(m.Value)
	}
	return out
}

func styleValues() []string {
	all := moods.Styles()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s.Value)
	}
	return out
}
