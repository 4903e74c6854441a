package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unowned-ai/confide/pkg/completion"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
	"github.com/unowned-ai/confide/pkg/orchestrator"
	"github.com/unowned-ai/confide/pkg/persist"
)

func setupOrchestrator(t *testing.T) (*orchestrator.Orchestrator, *persist.Memory) {
	t.Helper()
	kv := persist.NewMemory()
	store, err := diary.Open(context.Background(), kv)
	require.NoError(t, err)

	svc := completion.Func(func(ctx context.Context, req completion.Request) (string, error) {
		return "我在这里陪你。", nil
	})
	orch := orchestrator.New(store, svc, orchestrator.WithClock(func() time.Time {
		return time.Date(2024, 1, 1, 20, 0, 0, 0, time.Local)
	}))
	return orch, kv
}

func callRequest(args map[string]interface{}) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	switch c := res.Content[0].(type) {
	case mcp.TextContent:
		return c.Text
	case *mcp.TextContent:
		return c.Text
	}
	t.Fatalf("unexpected content type %T", res.Content[0])
	return ""
}

func TestPing(t *testing.T) {
	res, err := pingHandler(context.Background(), callRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "pong_confide", resultText(t, res))
}

func TestSubmitMood(t *testing.T) {
	orch, _ := setupOrchestrator(t)
	handler := submitMoodHandler(orch)

	res, err := handler(context.Background(), callRequest(map[string]interface{}{
		"content": "今天很开心",
		"mood":    "happy",
		"style":   "zen",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var entry moods.MoodEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entry))
	assert.Equal(t, moods.Happy, entry.Mood.Value)
	assert.Equal(t, moods.Zen, entry.ResponseStyle.Value)
	assert.Equal(t, "2024-01-01", entry.Date)
	assert.Len(t, orch.Store().Entries(), 1)
}

func TestSubmitMoodDefaults(t *testing.T) {
	orch, _ := setupOrchestrator(t)

	res, err := submitMoodHandler(orch)(context.Background(), callRequest(map[string]interface{}{
		"content": "说不清",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var entry moods.MoodEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entry))
	assert.Equal(t, moods.DefaultMood(), entry.Mood)
	assert.Equal(t, moods.DefaultStyle(), entry.ResponseStyle)
}

func TestSubmitMoodRejectsBadArguments(t *testing.T) {
	orch, _ := setupOrchestrator(t)
	handler := submitMoodHandler(orch)

	cases := []map[string]interface{}{
		{},
		{"content": "   "},
		{"content": strings.Repeat("字", moods.MaxContentLength+1)},
		{"content": "ok", "mood": "elated"},
		{"content": "ok", "style": "drill-sergeant"},
	}
	for _, args := range cases {
		res, err := handler(context.Background(), callRequest(args))
		require.NoError(t, err)
		assert.True(t, res.IsError, "%v", args)
	}
	assert.Empty(t, orch.Store().Entries())
}

func TestSubmitMoodPersistenceWarning(t *testing.T) {
	orch, kv := setupOrchestrator(t)
	kv.FailSaves(errors.New("disk full"))

	res, err := submitMoodHandler(orch)(context.Background(), callRequest(map[string]interface{}{
		"content": "还是想记下来",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	require.Len(t, res.Content, 2)
	assert.Len(t, orch.Store().Entries(), 1)
}

func TestRegenerate(t *testing.T) {
	orch, _ := setupOrchestrator(t)
	entry, err := orch.Submit(context.Background(), "有点累", nil, moods.DefaultStyle())
	require.NoError(t, err)

	res, err := regenerateHandler(orch)(context.Background(), callRequest(map[string]interface{}{
		"id":    entry.ID,
		"style": "counselor",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)

	var updated moods.MoodEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &updated))
	assert.Equal(t, entry.ID, updated.ID)
	assert.Equal(t, moods.Counselor, updated.ResponseStyle.Value)

	stored, ok := orch.Store().Entry(entry.ID)
	require.True(t, ok)
	assert.Equal(t, moods.Friend, stored.ResponseStyle.Value)

	res, err = regenerateHandler(orch)(context.Background(), callRequest(map[string]interface{}{"id": "missing"}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestNewConfideMCPServer(t *testing.T) {
	orch, _ := setupOrchestrator(t)
	srv := NewConfideMCPServer(orch, zerolog.Nop())
	assert.NotNil(t, srv.MCPRawServer())
}
