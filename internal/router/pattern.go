// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package router

import (
	"fmt"
	"net/url"
	"strings"
)

type segmentKind uint8

const (
	segmentLiteral segmentKind = iota
	segmentParam
)

// segment is one slash-separated piece of a compiled pattern.
type segment struct {
	kind  segmentKind
	value string // literal text, or parameter name
}

// pattern is a route template compiled once at registration. Matching
// compares segment by segment, so literal text is never interpreted.
type pattern struct {
	raw      string
	segments []segment
	params   int
}

// compilePattern parses a template such as "/tournament/:id/matches/:matchId".
// A segment starting with ':' names a parameter that captures exactly one
// non-empty path segment. Parameter names are letters, digits and '_', and are
// unique within a pattern. A ':' anywhere else is rejected.
func compilePattern(raw string) (pattern, error) {
	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must start with /", ErrInvalidPattern, raw)
	}

	p := pattern{raw: raw}
	seen := make(map[string]bool)

	for _, part := range splitPath(raw) {
		if !strings.HasPrefix(part, ":") {
			if strings.Contains(part, ":") {
				return pattern{}, fmt.Errorf("%w: %q: parameter must span a whole segment", ErrInvalidPattern, raw)
			}
			p.segments = append(p.segments, segment{kind: segmentLiteral, value: part})
			continue
		}

		name := part[1:]
		if !validParamName(name) {
			return pattern{}, fmt.Errorf("%w: %q: bad parameter name %q", ErrInvalidPattern, raw, name)
		}
		if seen[name] {
			return pattern{}, fmt.Errorf("%w: %q: parameter %q repeated", ErrInvalidPattern, raw, name)
		}
		seen[name] = true

		p.segments = append(p.segments, segment{kind: segmentParam, value: name})
		p.params++
	}

	return p, nil
}

// match reports whether path fits the pattern and returns the captured
// parameters keyed by name.
func (p pattern) match(path string) (Params, bool) {
	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := make(Params, p.params)
	for i, seg := range p.segments {
		switch seg.kind {
		case segmentLiteral:
			if parts[i] != seg.value {
				return nil, false
			}
		case segmentParam:
			if parts[i] == "" {
				return nil, false
			}
			value, err := url.PathUnescape(parts[i])
			if err != nil {
				return nil, false
			}
			params[seg.value] = value
		}
	}
	return params, true
}

func (p pattern) hasParams() bool {
	return p.params > 0
}

// splitPath splits an absolute path into segments. "/" has none; a trailing
// slash yields a trailing empty segment.
func splitPath(path string) []string {
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func validParamName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}
