package casing

import (
	"maps"
	"slices"
)

// Option is a function that configures a key conversion
type Option func(*convertConfig)

// convertConfig holds configuration for a key conversion
type convertConfig struct {
	skip     map[string]struct{}
	deepSkip bool
}

// WithSkip names mapping keys that keep their name and whose values are
// copied without recasing. By default the skip set only applies to the
// top-level mapping; see WithDeepSkip.
func WithSkip(keys ...string) Option {
	return func(cfg *convertConfig) {
		if cfg.skip == nil {
			cfg.skip = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			cfg.skip[k] = struct{}{}
		}
	}
}

// WithDeepSkip applies the skip set to mappings at every depth instead of
// only the top-level mapping.
func WithDeepSkip(enabled bool) Option {
	return func(cfg *convertConfig) {
		cfg.deepSkip = enabled
	}
}

func applyOptions(opts []Option) *convertConfig {
	cfg := &convertConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *convertConfig) skips(key string, top bool) bool {
	if len(c.skip) == 0 || (!top && !c.deepSkip) {
		return false
	}
	_, ok := c.skip[key]
	return ok
}

// ConvertKeys returns a deep copy of v in which every mapping key is
// converted with ToCamelCase, recursing through mappings and sequences.
//
// Supported containers are map[string]any, map[any]any (string keys are
// recased, other keys kept) and []any. nil and every other value are
// returned as-is. The input is never modified.
//
// When two keys of one mapping convert to the same name ("user_id" and
// "userId"), keys are applied in sorted order and the last one wins, so the
// result is deterministic.
func ConvertKeys(v any, opts ...Option) any {
	return convert(v, applyOptions(opts), true)
}

func convert(v any, cfg *convertConfig, top bool) any {
	switch val := v.(type) {
	case nil:
		return nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for _, k := range slices.Sorted(maps.Keys(val)) {
			if cfg.skips(k, top) {
				out[k] = clone(val[k])
				continue
			}
			out[ToCamelCase(k)] = convert(val[k], cfg, false)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(val))
		for _, k := range sortedAnyKeys(val) {
			s, ok := k.(string)
			switch {
			case !ok:
				out[k] = convert(val[k], cfg, false)
			case cfg.skips(s, top):
				out[s] = clone(val[k])
			default:
				out[ToCamelCase(s)] = convert(val[k], cfg, false)
			}
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = convert(elem, cfg, false)
		}
		return out
	default:
		return v
	}
}

// clone deep-copies the JSON-like containers of v without touching keys.
func clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = clone(elem)
		}
		return out
	case map[any]any:
		out := make(map[any]any, len(val))
		for k, elem := range val {
			out[k] = clone(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = clone(elem)
		}
		return out
	default:
		return v
	}
}

// sortedAnyKeys returns the string keys of m in sorted order followed by
// the non-string keys, which cannot collide after recasing.
func sortedAnyKeys(m map[any]any) []any {
	var strs []string
	var others []any
	for k := range m {
		if s, ok := k.(string); ok {
			strs = append(strs, s)
		} else {
			others = append(others, k)
		}
	}
	slices.Sort(strs)
	keys := make([]any, 0, len(m))
	for _, s := range strs {
		keys = append(keys, s)
	}
	return append(keys, others...)
}
