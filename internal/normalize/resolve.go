package normalize

import (
	"strconv"
	"strings"
)

// Field resolution is expressed as ordered rule lists: each rule is a pure
// function from the raw object to an optional value, and the first success
// wins. The lists document provider quirks as data rather than control flow.

type stringRule func(obj map[string]any) (string, bool)

type numberRule func(obj map[string]any) (float64, bool)

func firstString(obj map[string]any, rules []stringRule) (string, bool) {
	for _, rule := range rules {
		if v, ok := rule(obj); ok {
			return v, true
		}
	}
	return "", false
}

func firstNumber(obj map[string]any, rules []numberRule) (float64, bool) {
	for _, rule := range rules {
		if v, ok := rule(obj); ok {
			return v, true
		}
	}
	return 0, false
}

// aliasString tries several field names for one canonical string value.
func aliasString(keys ...string) stringRule {
	return func(obj map[string]any) (string, bool) {
		for _, key := range keys {
			if v, ok := asString(obj[key]); ok {
				return v, true
			}
		}
		return "", false
	}
}

// aliasNumber tries several field names for one canonical numeric value.
func aliasNumber(keys ...string) numberRule {
	return func(obj map[string]any) (float64, bool) {
		for _, key := range keys {
			if v, ok := asNumber(obj[key]); ok {
				return v, true
			}
		}
		return 0, false
	}
}

// nestedString digs one level into a sub-object before trying aliases.
func nestedString(key string, inner ...string) stringRule {
	return func(obj map[string]any) (string, bool) {
		sub, ok := obj[key].(map[string]any)
		if !ok {
			return "", false
		}
		return aliasString(inner...)(sub)
	}
}

// composedName joins a city-like and nickname-like field pair.
func composedName(pairs ...[2]string) stringRule {
	return func(obj map[string]any) (string, bool) {
		for _, pair := range pairs {
			city, okCity := asString(obj[pair[0]])
			nick, okNick := asString(obj[pair[1]])
			if okCity && okNick {
				return city + " " + nick, true
			}
		}
		return "", false
	}
}

// statNumber reads grouped-ranking "stats" sub-objects of the form
// [{"name": "wins", "value": 9}, ...], matching names case-insensitively.
func statNumber(names ...string) numberRule {
	return func(obj map[string]any) (float64, bool) {
		entry, ok := statEntry(obj, names)
		if !ok {
			return 0, false
		}
		return asNumber(entry["value"])
	}
}

// statDisplay reads the displayValue of a named stat sub-object, e.g. "W3"
// for a streak or "4-6" for the last-ten split.
func statDisplay(names ...string) stringRule {
	return func(obj map[string]any) (string, bool) {
		entry, ok := statEntry(obj, names)
		if !ok {
			return "", false
		}
		if v, ok := asString(entry["displayValue"]); ok {
			return v, true
		}
		return asString(entry["displayName"])
	}
}

func statEntry(obj map[string]any, names []string) (map[string]any, bool) {
	list, ok := obj["stats"].([]any)
	if !ok {
		return nil, false
	}
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := asString(entry["name"])
		if label == "" {
			label, _ = asString(entry["type"])
		}
		label = strings.ToLower(label)
		for _, name := range names {
			if label == strings.ToLower(name) {
				return entry, true
			}
		}
	}
	return nil, false
}

// asString coerces a raw JSON scalar into a non-empty string.
func asString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		trimmed := strings.TrimSpace(s)
		return trimmed, trimmed != ""
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10), true
		}
		return strconv.FormatFloat(s, 'f', -1, 64), true
	}
	return "", false
}

// asNumber coerces a raw JSON scalar into a float, accepting numeric strings.
func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}
