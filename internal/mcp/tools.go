package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/planfit/internal/domain"
	"github.com/claude/planfit/internal/schedule"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseRefDate parses the optional date argument, defaulting to today.
func parseRefDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// --- Tool definitions ---

var toolListPlans = mcp.NewTool("list_plans",
	mcp.WithDescription("List all stored training plans with their schedules, tags, and ratings."),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Fetch one training plan by identifier, including its full slot-key schedule."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan identifier")),
)

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("List all stored workout sessions with their movements and sets."),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Fetch one workout session by identifier, including its ordered movements."),
	mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
)

var toolResolveToday = mcp.NewTool("resolve_today",
	mcp.WithDescription("Resolve what a plan schedules for a date: a workout session, a non-gym activity, a rest day, or unresolved when the slot is empty or unknown."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan identifier")),
	mcp.WithString("date", mcp.Description("Reference date (ISO 8601 or YYYY-MM-DD). Defaults to today.")),
)

var toolGetPlanProgress = mcp.NewTool("get_plan_progress",
	mcp.WithDescription("Completion fraction [0,1] of a sequential plan at a date. Null for day-of-week plans — a weekly template never completes."),
	mcp.WithString("plan_id", mcp.Required(), mcp.Description("Plan identifier")),
	mcp.WithString("date", mcp.Description("Reference date (ISO 8601 or YYYY-MM-DD). Defaults to today.")),
)

// --- Tool handlers ---

func (h *handlers) listPlans(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plans, err := h.store.ListPlans(ctx)
	if err != nil {
		h.log.Error("mcp list_plans", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(plans)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("plan_id")
	if err != nil {
		return mcp.NewToolResultError("plan_id parameter is required"), nil
	}

	plan, err := h.store.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_plan", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if plan == nil {
		return mcp.NewToolResultError("plan not found: " + id), nil
	}
	result, err := mcp.NewToolResultJSON(plan)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions, err := h.store.ListSessions(ctx)
	if err != nil {
		h.log.Error("mcp list_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("session_id")
	if err != nil {
		return mcp.NewToolResultError("session_id parameter is required"), nil
	}

	session, err := h.store.GetSession(ctx, id)
	if err != nil {
		h.log.Error("mcp get_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if session == nil {
		return mcp.NewToolResultError("session not found: " + id), nil
	}
	result, err := mcp.NewToolResultJSON(session)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) resolveToday(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("plan_id")
	if err != nil {
		return mcp.NewToolResultError("plan_id parameter is required"), nil
	}
	ref, err := parseRefDate(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	plan, err := h.store.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp resolve_today", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if plan == nil {
		return mcp.NewToolResultError("plan not found: " + id), nil
	}

	item := schedule.ResolveToday(*plan, ref, h.sessionLookup(ctx))

	result, err := mcp.NewToolResultJSON(map[string]any{
		"planId": plan.ID,
		"date":   ref.Format("2006-01-02"),
		"item":   item,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPlanProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("plan_id")
	if err != nil {
		return mcp.NewToolResultError("plan_id parameter is required"), nil
	}
	ref, err := parseRefDate(req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	plan, err := h.store.GetPlan(ctx, id)
	if err != nil {
		h.log.Error("mcp get_plan_progress", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if plan == nil {
		return mcp.NewToolResultError("plan not found: " + id), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"planId":   plan.ID,
		"date":     ref.Format("2006-01-02"),
		"progress": schedule.Progress(*plan, ref),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

// sessionLookup adapts the store to the resolver callback; store errors read
// as a catalog miss.
func (h *handlers) sessionLookup(ctx context.Context) schedule.SessionLookup {
	return func(id string) *domain.WorkoutSession {
		s, err := h.store.GetSession(ctx, id)
		if err != nil {
			h.log.Warn("session lookup failed", "session", id, "error", err)
			return nil
		}
		return s
	}
}

// --- Resource handlers ---

func (h *handlers) todayOverview(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	plans, err := h.store.ListPlans(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	items := make([]map[string]any, 0, len(plans))
	for _, plan := range plans {
		items = append(items, map[string]any{
			"planId":   plan.ID,
			"planName": plan.Name,
			"item":     schedule.ResolveToday(plan, now, h.sessionLookup(ctx)),
			"progress": schedule.Progress(plan, now),
		})
	}

	data, err := json.Marshal(map[string]any{
		"date":  now.Format("2006-01-02"),
		"plans": items,
	})
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
