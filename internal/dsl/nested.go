package dsl

import "strings"

// prefixFields rewrites every field name inside a lowered clause so it
// reads path.field, per §4.4. It descends into match, range, exists and
// bool (must/should/must_not/filter); a nested clause governs its own
// fields and is left alone. Idempotent: a field already under path. is not
// re-prefixed.
func prefixFields(doc map[string]any, path string) map[string]any {
	if m, ok := doc["match"].(map[string]any); ok {
		doc["match"] = rekey(m, path)
		return doc
	}
	if r, ok := doc["range"].(map[string]any); ok {
		doc["range"] = rekey(r, path)
		return doc
	}
	if e, ok := doc["exists"].(map[string]any); ok {
		if f, ok := e["field"].(string); ok {
			e["field"] = prefixField(f, path)
		}
		return doc
	}
	if b, ok := doc["bool"].(map[string]any); ok {
		for _, clause := range []string{"must", "should", "must_not", "filter"} {
			list, ok := b[clause].([]any)
			if !ok {
				continue
			}
			for i, item := range list {
				if m, ok := item.(map[string]any); ok {
					list[i] = prefixFields(m, path)
				}
			}
		}
		return doc
	}
	// nested: inner scope governs itself.
	return doc
}

func prefixField(field, path string) string {
	prefix := path + "."
	if strings.HasPrefix(field, prefix) {
		return field
	}
	return prefix + field
}

func rekey(m map[string]any, path string) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[prefixField(k, path)] = v
	}
	return out
}
