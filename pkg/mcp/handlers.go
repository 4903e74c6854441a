package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/unowned-ai/confide/pkg/diary"
	"github.com/unowned-ai/confide/pkg/moods"
	"github.com/unowned-ai/confide/pkg/orchestrator"
)

// ToolNames lists every registered tool, for startup logging.
const ToolNames = "ping, list_moods, list_styles, submit_mood, regenerate_response, list_entries, " +
	"entries_by_date, remove_entry, mood_stats, get_response_style, set_response_style, " +
	"daily_quote, toggle_quote_like, liked_quotes"

// RegisterPingTool registers the simple ping tool.
func RegisterPingTool(s *server.MCPServer) {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Responds with 'pong' to check if the Confide MCP server is alive."),
	)
	s.AddTool(pingTool, pingHandler)
}

func pingHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText("pong_confide"), nil
}

// RegisterCatalogTools registers list_moods and list_styles.
func RegisterCatalogTools(s *server.MCPServer) {
	s.AddTool(mcp.NewTool("list_moods",
		mcp.WithDescription("Lists the mood tags an entry can carry, in display order."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(moods.Moods()), nil
	})

	s.AddTool(mcp.NewTool("list_styles",
		mcp.WithDescription("Lists the response styles the companion can answer in."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(moods.Styles()), nil
	})
}

// RegisterEntryTools registers the tools that create, read and remove diary entries.
func RegisterEntryTools(s *server.MCPServer, orch *orchestrator.Orchestrator) {
	s.AddTool(mcp.NewTool("submit_mood",
		mcp.WithDescription("Writes a diary entry and returns it with the companion's reply. Uses the current response style unless 'style' is given."),
		mcp.WithString("content", mcp.Required(), mcp.Description("What the user wants to say, at most 1000 characters.")),
		mcp.WithString("mood", mcp.Description("Mood value; omit for a complex, mixed feeling."), mcp.Enum(moodValues()...)),
		mcp.WithString("style", mcp.Description("Response style for this reply only."), mcp.Enum(styleValues()...)),
	), submitMoodHandler(orch))

	s.AddTool(mcp.NewTool("regenerate_response",
		mcp.WithDescription("Generates a fresh reply for an existing entry. The stored entry is not changed."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the entry.")),
		mcp.WithString("style", mcp.Description("Response style; defaults to the current one."), mcp.Enum(styleValues()...)),
	), regenerateHandler(orch))

	store := orch.Store()

	s.AddTool(mcp.NewTool("list_entries",
		mcp.WithDescription("Lists diary entries grouped by date, newest first."),
		mcp.WithString("mood", mcp.Description("Only include entries with this mood."), mcp.Enum(moodValues()...)),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		mood, _ := stringArg(request, "mood")
		return jsonResult(store.EntriesGroupedByDate(moods.MoodValue(mood))), nil
	})

	s.AddTool(mcp.NewTool("entries_by_date",
		mcp.WithDescription("Lists the entries written on one day."),
		mcp.WithString("date", mcp.Required(), mcp.Description("Calendar date as YYYY-MM-DD.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, ok := stringArg(request, "date")
		if !ok {
			return mcp.NewToolResultError("'date' parameter is required and must be a non-empty string."), nil
		}
		return jsonResult(store.EntriesByDate(date)), nil
	})

	s.AddTool(mcp.NewTool("remove_entry",
		mcp.WithDescription("Deletes a diary entry. Unknown IDs are ignored."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the entry to delete.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := stringArg(request, "id")
		if !ok {
			return mcp.NewToolResultError("'id' parameter is required and must be a non-empty string."), nil
		}
		_, existed := store.Entry(id)
		err := store.RemoveEntry(id)
		return jsonResultWithWarning(map[string]interface{}{"id": id, "removed": existed}, err, "remove entry"), nil
	})

	s.AddTool(mcp.NewTool("mood_stats",
		mcp.WithDescription("Counts entries per mood."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(store.MoodCounts()), nil
	})
}

func submitMoodHandler(orch *orchestrator.Orchestrator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, ok := request.Params.Arguments["content"].(string)
		if !ok {
			return mcp.NewToolResultError("'content' parameter is required and must be a string."), nil
		}
		mood, err := optionalMood(request)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		style, err := styleOrCurrent(request, orch.Store())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		entry, err := orch.Submit(ctx, content, mood, style)
		return jsonResultWithWarning(entry, err, "submit mood"), nil
	}
}

func regenerateHandler(orch *orchestrator.Orchestrator) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := stringArg(request, "id")
		if !ok {
			return mcp.NewToolResultError("'id' parameter is required and must be a non-empty string."), nil
		}
		existing, found := orch.Store().Entry(id)
		if !found {
			return mcp.NewToolResultError(fmt.Sprintf("Entry with id '%s' not found.", id)), nil
		}
		style, err := styleOrCurrent(request, orch.Store())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		updated, err := orch.Regenerate(ctx, existing, style)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to regenerate response: %v", err)), nil
		}
		return jsonResult(updated), nil
	}
}

func styleOrCurrent(request mcp.CallToolRequest, store *diary.Store) (moods.ResponseStyle, error) {
	v, ok := stringArg(request, "style")
	if !ok {
		return store.ResponseStyle(), nil
	}
	return moods.LookupStyle(moods.StyleValue(v))
}

// RegisterStyleTools registers get_response_style and set_response_style.
func RegisterStyleTools(s *server.MCPServer, store *diary.Store) {
	s.AddTool(mcp.NewTool("get_response_style",
		mcp.WithDescription("Returns the response style used for new entries."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(store.ResponseStyle()), nil
	})

	s.AddTool(mcp.NewTool("set_response_style",
		mcp.WithDescription("Changes the response style used for new entries."),
		mcp.WithString("style", mcp.Required(), mcp.Description("Style value."), mcp.Enum(styleValues()...)),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		v, ok := stringArg(request, "style")
		if !ok {
			return mcp.NewToolResultError("'style' parameter is required and must be a non-empty string."), nil
		}
		style, err := moods.LookupStyle(moods.StyleValue(v))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		err = store.SetResponseStyle(style)
		return jsonResultWithWarning(style, err, "set response style"), nil
	})
}

// RegisterQuoteTools registers the daily quote tools.
func RegisterQuoteTools(s *server.MCPServer, orch *orchestrator.Orchestrator) {
	store := orch.Store()

	s.AddTool(mcp.NewTool("daily_quote",
		mcp.WithDescription("Returns today's quote. The same quote is returned all day."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q, err := orch.QuoteOfTheDay(ctx)
		if err != nil && q.ID == "" {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get daily quote: %v", err)), nil
		}
		return jsonResultWithWarning(q, err, "get daily quote"), nil
	})

	s.AddTool(mcp.NewTool("toggle_quote_like",
		mcp.WithDescription("Flips the liked flag of a stored quote."),
		mcp.WithString("id", mcp.Required(), mcp.Description("ID of the quote.")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, ok := stringArg(request, "id")
		if !ok {
			return mcp.NewToolResultError("'id' parameter is required and must be a non-empty string."), nil
		}
		err := store.ToggleQuoteLike(id)
		var warn *diary.PersistenceWarning
		if err != nil && !errors.As(err, &warn) {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to toggle like: %v", err)), nil
		}
		for _, q := range store.DailyQuotes() {
			if q.ID == id {
				return jsonResultWithWarning(q, err, "toggle like"), nil
			}
		}
		return mcp.NewToolResultError(fmt.Sprintf("Quote with id '%s' not found.", id)), nil
	})

	s.AddTool(mcp.NewTool("liked_quotes",
		mcp.WithDescription("Lists the quotes the user has liked."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(store.LikedQuotes()), nil
	})
}
