// Package chatutil provides small, dependency-light helpers used by a
// chat platform REST API client.
//
// The helpers are grouped into focused packages:
//
//   - casing: snake_case to camelCase conversion of keys and whole decoded
//     payloads, plus acronym extraction for guild and channel names
//   - color: conversions between packed 24-bit color integers, hex strings
//     and RGB triples
//   - markup: a matcher for the closed set of message markup patterns
//     (mentions, custom emoji, code blocks, spoilers, URLs and others)
//   - delay: a context-aware sleep helper
//   - chaterrors: structured error types shared by the packages above
//
// # Installation
//
//	go get github.com/erraggy/chatutil
//
// # Quick Start
//
// Recase an API payload:
//
//	import "github.com/erraggy/chatutil/casing"
//
//	payload, err := casing.DecodeJSON(body, casing.WithSkip("permissions"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Match a user mention:
//
//	import "github.com/erraggy/chatutil/markup"
//
//	m, err := markup.NewMatcher()
//	if err != nil {
//		log.Fatal(err)
//	}
//	match, err := m.Match("MENTION_USER", "<@123456>")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if match != nil {
//		fmt.Println(match.ID) // 123456
//	}
//
// Convert a color:
//
//	import "github.com/erraggy/chatutil/color"
//
//	rgb := color.IntToRGB(color.HexToInt("#5865f2"))
//	fmt.Println(rgb.R, rgb.G, rgb.B) // 88 101 242
//
// # Command-Line Tool
//
// The chatutil command exposes the same helpers from a shell and, with
// "chatutil mcp", as MCP tools over stdio.
package chatutil
