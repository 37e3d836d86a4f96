package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listImagesTool defines the list_images MCP tool.
var listImagesTool = mcp.NewTool("list_images",
	mcp.WithDescription("List every portfolio image in display order, with URL and content key."),
)

// getSubsetTool defines the get_subset MCP tool.
var getSubsetTool = mcp.NewTool("get_subset",
	mcp.WithDescription("Get the images of one named subset of the ordered image sequence."),
	mcp.WithString("name",
		mcp.Required(),
		mcp.Description("Subset name"),
		mcp.Enum("hero", "about", "projects", "gallery"),
	),
)

// resolveSlotTool defines the resolve_slot MCP tool.
var resolveSlotTool = mcp.NewTool("resolve_slot",
	mcp.WithDescription("Resolve a named image slot (such as heroPortrait) or a content key to its image."),
	mcp.WithString("slot",
		mcp.Required(),
		mcp.Description("Slot name or content key"),
	),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get the content of one page section as plain text."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section id"),
		mcp.Enum("home", "about", "skills", "projects", "experience", "education", "leadership", "interests", "gallery", "contact"),
	),
)
