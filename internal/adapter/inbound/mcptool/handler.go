// Package mcptool is the inbound adapter: it registers the agent-facing
// tools on the MCP server, parses and validates tool arguments, and turns
// every failure into a non-throwing error result so one bad tool call can
// never take down the process.
package mcptool

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tablebridge/tablebridge/internal/domain"
	"github.com/tablebridge/tablebridge/internal/usecase"
)

// Handlers wires the use cases to MCP tool definitions.
type Handlers struct {
	search       *usecase.SearchUseCase
	availability *usecase.AvailabilityUseCase
	cuisines     *usecase.CuisineCatalogUseCase
	links        *usecase.ReservationLinkUseCase
	logger       *slog.Logger
}

// NewHandlers creates the tool handler set.
func NewHandlers(
	search *usecase.SearchUseCase,
	availability *usecase.AvailabilityUseCase,
	cuisines *usecase.CuisineCatalogUseCase,
	links *usecase.ReservationLinkUseCase,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		search:       search,
		availability: availability,
		cuisines:     cuisines,
		links:        links,
		logger:       logger.With("component", "mcptool_handler"),
	}
}

// Register adds all four tools to the MCP server.
func (h *Handlers) Register(srv *server.MCPServer) {
	srv.AddTool(findRestaurantsTool(), h.handleFindRestaurants)
	srv.AddTool(getAvailabilityTool(), h.handleGetAvailability)
	srv.AddTool(listCuisinesTool(), h.handleListCuisines)
	srv.AddTool(getReservationLinkTool(), h.handleGetReservationLink)
	h.logger.Info("Registered MCP tools", slog.Int("count", 4))
}

func searchParamOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("location",
			mcp.Description("Free-text place name, e.g. \"Shibuya\" or \"Osaka\". Resolved to a coordinate; unknown places fall back to a default area.")),
		mcp.WithNumber("latitude", mcp.Description("Latitude of the search anchor, -90 to 90. Provide together with longitude.")),
		mcp.WithNumber("longitude", mcp.Description("Longitude of the search anchor, -180 to 180. Provide together with latitude.")),
		mcp.WithNumber("distance", mcp.Description("Search radius in kilometres around the anchor. Defaults to 5.")),
		mcp.WithArray("cuisine",
			mcp.Description("Canonical cuisine ids to filter by, e.g. [\"sushi\", \"italian\"]. Use list_cuisines for valid ids."),
			mcp.Items(map[string]any{"type": "string"})),
		mcp.WithString("date_min", mcp.Description("Earliest visit date, YYYY-MM-DD.")),
		mcp.WithString("date_max", mcp.Description("Latest visit date, YYYY-MM-DD.")),
		mcp.WithNumber("num_people", mcp.Description("Party size, 1-20.")),
		mcp.WithString("time", mcp.Description("Desired seating time, HH:MM (24h).")),
		mcp.WithNumber("budget_min", mcp.Description("Minimum dinner budget per person.")),
		mcp.WithNumber("budget_max", mcp.Description("Maximum dinner budget per person.")),
		mcp.WithString("sort_by", mcp.Description("Sort key."), mcp.Enum("distance", "price")),
		mcp.WithString("sort_order", mcp.Description("Sort direction."), mcp.Enum("asc", "desc")),
		mcp.WithString("locale", mcp.Description("Display language, \"en\" or \"jp\". Defaults to \"en\"."), mcp.Enum("en", "jp")),
	}
}

func findRestaurantsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Search for restaurants by free text and/or structured filters. Returns names, cuisines, prices, available dates and reservation links."),
		mcp.WithString("query", mcp.Description("Free-text search, e.g. a restaurant name or \"indian curry\". When present, matching cuisine filters are derived from it automatically.")),
	}
	opts = append(opts, searchParamOptions()...)
	return mcp.NewTool("find_restaurants", opts...)
}

func getAvailabilityTool() mcp.Tool {
	return mcp.NewTool("get_availability",
		mcp.WithDescription("Look up the availability calendar of one restaurant."),
		mcp.WithString("shop_id", mcp.Required(),
			mcp.Description("The restaurant's slug or id, as returned by find_restaurants.")),
		mcp.WithString("start_at", mcp.Required(),
			mcp.Description("Start of the availability window, ISO 8601 timestamp, e.g. 2025-07-15T00:00:00Z.")),
		mcp.WithNumber("num_people", mcp.Required(), mcp.Description("Party size, 1-20.")),
		mcp.WithString("locale", mcp.Description("Display language, \"en\" or \"jp\"."), mcp.Enum("en", "jp")),
	)
}

func listCuisinesTool() mcp.Tool {
	return mcp.NewTool("list_cuisines",
		mcp.WithDescription("List the canonical cuisine categories with display names in the requested language."),
		mcp.WithString("locale", mcp.Description("Display language, \"en\" or \"jp\". Defaults to \"en\"."), mcp.Enum("en", "jp")),
	)
}

func getReservationLinkTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Build a stable reservation URL for a known restaurant, optionally prefilled with party size, dates, time and budget."),
		mcp.WithString("shop_slug", mcp.Required(),
			mcp.Description("The restaurant's slug, as returned by find_restaurants.")),
	}
	opts = append(opts, searchParamOptions()...)
	return mcp.NewTool("get_reservation_link", opts...)
}

func (h *Handlers) handleFindRestaurants(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, location, err := parseSearchRequest(request.GetArguments())
	if err != nil {
		h.logger.Warn("Rejected find_restaurants arguments", slog.Any("error", err))
		return mcp.NewToolResultError(err.Error()), nil
	}
	records, err := h.search.Execute(ctx, req, location)
	if err != nil {
		h.logger.Error("Search failed", slog.Any("error", err))
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	return mcp.NewToolResultText(formatRestaurants(records)), nil
}

func (h *Handlers) handleGetAvailability(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	shopID, err := requireString(args, "shop_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	startAt, err := requireString(args, "start_at")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	numPeople, err := optInt(args, "num_people")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if numPeople == nil {
		return mcp.NewToolResultError("parameter \"num_people\" is required"), nil
	}
	if err := validatePartySize(*numPeople); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	locale, err := parseLocale(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	slots, err := h.availability.Execute(ctx, domain.AvailabilityRequest{
		ShopID:    shopID,
		StartAt:   startAt,
		NumPeople: *numPeople,
		Locale:    locale,
	})
	if err != nil {
		h.logger.Error("Availability lookup failed", slog.Any("error", err))
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	return mcp.NewToolResultText(formatSlots(slots)), nil
}

func (h *Handlers) handleListCuisines(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	locale, err := parseLocale(request.GetArguments())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	records, err := h.cuisines.List(ctx, locale)
	if err != nil {
		h.logger.Error("Cuisine listing failed", slog.Any("error", err))
		return mcp.NewToolResultError(errorMessage(err)), nil
	}
	return mcp.NewToolResultText(formatCuisines(records)), nil
}

func (h *Handlers) handleGetReservationLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	slug, err := requireString(args, "shop_slug")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	req, _, err := parseSearchRequest(args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	link := h.links.Execute(slug, req, req.Locale)
	return mcp.NewToolResultText(link), nil
}

// errorMessage maps an error chain to the caller-visible message. API
// errors carry their own taxonomy wording; anything else is passed
// through as-is.
func errorMessage(err error) string {
	if apiErr, ok := domain.AsAPIError(err); ok {
		return apiErr.Error()
	}
	return err.Error()
}
