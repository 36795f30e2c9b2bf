// Package casing converts API payload keys from snake_case to camelCase.
//
// Chat platform REST APIs return snake_case JSON ("guild_id",
// "premium_since"), while client models are usually keyed in camelCase.
// [ConvertKeys] walks a decoded payload (the map[string]any, []any and
// scalar shape produced by encoding/json or YAML decoders) and returns a
// recased deep copy. [DecodeJSON] and [DecodeYAML] decode and recase in one
// step, and [DecodeInto] maps the recased payload onto a struct.
//
// # Key conversion
//
// [ToCamelCase] leaves keys without underscores untouched and otherwise
// title-cases every underscore-separated segment:
//
//	ToCamelCase("premium_since") // "premiumSince"
//	ToCamelCase("USER_ID")       // "userId"
//	ToCamelCase("a__b")          // "aB"  (empty segments are dropped)
//	ToCamelCase("guildId")       // "guildId"
//
// Casing uses full Unicode mappings from golang.org/x/text/cases, so
// "straße_nr" becomes "straßeNr" and "ß_x" becomes "sSX".
//
// # Skipping keys
//
// Some payload members are keyed by data rather than by schema (for
// example a map of user IDs to member records) and must not be recased.
// [WithSkip] names top-level keys whose values are copied verbatim;
// [WithDeepSkip] applies the skip set at every depth.
//
//	out := casing.ConvertKeys(payload, casing.WithSkip("members"))
//
// # Acronyms
//
// [Acronym] builds the short form shown for guilds without an icon:
//
//	casing.Acronym("Hello World") // "HW"
package casing
