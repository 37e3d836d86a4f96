package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/folio/internal/assets"
	"github.com/ziadkadry99/folio/internal/content"
)

// handleListImages returns the full ordered sequence.
func (s *Server) handleListImages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ix := s.library.Current()
	if ix.Len() == 0 {
		return mcp.NewToolResultText("No images found. Add .jpg, .jpeg, .png or .webp files to the asset directory."), nil
	}
	return mcp.NewToolResultText(formatImages(fmt.Sprintf("%d image(s) in display order:", ix.Len()), ix.Sequence)), nil
}

// handleGetSubset returns one named subset.
func (s *Server) handleGetSubset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: name"), nil
	}

	sub, ok := s.library.Current().Subsets.Get(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown subset %q; use one of %s", name, strings.Join(assets.SubsetNames, ", "))), nil
	}
	if len(sub) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("The %s subset is empty.", name)), nil
	}
	return mcp.NewToolResultText(formatImages(fmt.Sprintf("%s subset, %d image(s):", name, len(sub)), sub)), nil
}

// handleResolveSlot resolves a slot or content key.
func (s *Server) handleResolveSlot(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, err := request.RequireString("slot")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: slot"), nil
	}

	a, ok := s.library.Current().Resolve(slot)
	if !ok {
		return mcp.NewToolResultText(fmt.Sprintf("Slot %q does not resolve to any image; the page renders it without an image.", slot)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s -> %s (key %s, url %s)", slot, a.Name, a.Key, a.URL)), nil
}

// handleGetSection renders one section of the content as text.
func (s *Server) handleGetSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	section, err := request.RequireString("section")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: section"), nil
	}

	text, ok := formatSection(s.content, section)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown section %q", section)), nil
	}
	if text == "" {
		return mcp.NewToolResultText(fmt.Sprintf("The %s section has no content.", section)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func formatImages(header string, seq assets.Sequence) string {
	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n")
	for i, a := range seq {
		sb.WriteString(fmt.Sprintf("%d. %s (key %s) %s\n", i+1, a.Name, a.Key, a.URL))
	}
	return sb.String()
}

// formatSection converts one section of c into plain text for agents.
func formatSection(c *content.Content, section string) (string, bool) {
	var sb strings.Builder
	line := func(format string, args ...any) {
		sb.WriteString(fmt.Sprintf(format, args...))
		sb.WriteString("\n")
	}
	list := func(items []string) {
		for _, it := range items {
			line("- %s", it)
		}
	}

	switch section {
	case "home":
		line("%s", c.Name)
		if c.Headline != "" {
			line("%s", c.Headline)
		}
		if c.Summary != "" {
			line("\n%s", strings.TrimSpace(c.Summary))
		}
	case "about":
		if c.About.Body != "" {
			line("%s", strings.TrimSpace(c.About.Body))
		}
		list(c.About.Highlights)
	case "skills":
		for _, g := range c.Skills {
			line("%s: %s", g.Title, strings.Join(g.Items, ", "))
		}
		if len(c.Tools) > 0 {
			line("Tools: %s", strings.Join(c.Tools, ", "))
		}
	case "projects":
		for _, p := range c.Projects {
			line("## %s", p.Title)
			if p.Description != "" {
				line("%s", strings.TrimSpace(p.Description))
			}
			if len(p.Tech) > 0 {
				line("Tech: %s", strings.Join(p.Tech, ", "))
			}
			list(p.Features)
		}
	case "experience":
		for _, p := range c.Experience {
			line("## %s, %s (%s)", p.Role, p.Company, p.Period)
			list(p.Points)
		}
	case "education":
		for _, e := range c.Education {
			line("## %s, %s (%s)", e.Title, e.Institution, e.Period)
			list(e.Details)
		}
	case "leadership":
		for _, card := range c.Leadership {
			formatCard(line, card)
		}
	case "interests":
		for _, card := range c.Interests.Cards {
			formatCard(line, card)
		}
		list(c.Interests.Other)
	case "gallery":
		for _, g := range c.Gallery {
			line("- %s (%s)", g.Title, g.Category)
		}
	case "contact":
		for _, kv := range [][2]string{
			{"Email", c.Contact.Email},
			{"Phone", c.Contact.Phone},
			{"GitHub", c.Contact.GitHub},
			{"LinkedIn", c.Contact.LinkedIn},
			{"Medium", c.Contact.Medium},
		} {
			if kv[1] != "" {
				line("%s: %s", kv[0], kv[1])
			}
		}
	default:
		return "", false
	}
	return sb.String(), true
}

func formatCard(line func(string, ...any), card content.Card) {
	if card.Subtitle != "" {
		line("## %s (%s)", card.Title, card.Subtitle)
	} else {
		line("## %s", card.Title)
	}
	if card.Description != "" {
		line("%s", card.Description)
	}
}
