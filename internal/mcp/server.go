// Package mcp exposes the stored plans and sessions to MCP clients: listing
// and fetching entities, resolving what a plan prescribes for a date, and
// reading sequential-plan progress.
package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/planfit/internal/domain"
	"github.com/claude/planfit/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// PlanStore abstracts the data layer for MCP tools. *storage.DB satisfies it;
// tests supply a fake.
type PlanStore interface {
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlan(ctx context.Context, id string) (*domain.Plan, error)
	ListSessions(ctx context.Context) ([]domain.WorkoutSession, error)
	GetSession(ctx context.Context, id string) (*domain.WorkoutSession, error)
}

// Compile-time check: *storage.DB satisfies PlanStore.
var _ PlanStore = (*storage.DB)(nil)

// New creates an MCP server with all tools and resources registered.
func New(store PlanStore, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("PlanFit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("PlanFit training plan server. Query workout plans and sessions, resolve what a plan schedules for a given date (a session, an activity, or a rest day), and read sequential-plan progress."),
	)

	h := &handlers{store: store, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListPlans, Handler: h.listPlans},
		server.ServerTool{Tool: toolGetPlan, Handler: h.getPlan},
		server.ServerTool{Tool: toolListSessions, Handler: h.listSessions},
		server.ServerTool{Tool: toolGetSession, Handler: h.getSession},
		server.ServerTool{Tool: toolResolveToday, Handler: h.resolveToday},
		server.ServerTool{Tool: toolGetPlanProgress, Handler: h.getPlanProgress},
	)

	s.AddResources(
		server.ServerResource{Resource: resTodayOverview, Handler: h.todayOverview},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	store PlanStore
	log   *slog.Logger
}

var resTodayOverview = mcp.NewResource(
	"planfit://today",
	"Today's Schedule",
	mcp.WithResourceDescription("Today's resolved schedule item for every stored plan"),
	mcp.WithMIMEType("application/json"),
)
