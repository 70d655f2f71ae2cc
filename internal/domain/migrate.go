package domain

// Suite documents written by older releases use different key names than
// the current schema. MigrateSuiteDocument renames them before the suite
// is constructed, driven by a declarative table so new legacy keys only
// need one more row here.

// renameScope says where in the document a rename applies.
type renameScope int

const (
	// scopeSuite renames a key of the top-level suite object.
	scopeSuite renameScope = iota
	// scopeExpectation renames a key of each element of "expectations".
	scopeExpectation
)

type keyRename struct {
	scope renameScope
	old   string
	new   string
}

var legacyRenames = []keyRename{
	{scopeSuite, "expectation_suite_name", "name"},
	{scopeExpectation, "expectation_type", "type"},
}

// MigrateSuiteDocument returns a copy of doc with legacy key names renamed
// to their current counterparts. All other keys pass through unchanged.
// The transformation is idempotent; when a document carries both the
// legacy and the current key, the legacy value wins, matching the
// pop-then-assign behavior of the original shim.
func MigrateSuiteDocument(doc map[string]any) map[string]any {
	if doc == nil {
		return nil
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	for _, r := range legacyRenames {
		switch r.scope {
		case scopeSuite:
			renameKey(out, r.old, r.new)
		case scopeExpectation:
			exps, ok := out["expectations"].([]any)
			if !ok {
				continue
			}
			migrated := make([]any, len(exps))
			for i, e := range exps {
				m, ok := e.(map[string]any)
				if !ok {
					migrated[i] = e
					continue
				}
				cp := make(map[string]any, len(m))
				for k, v := range m {
					cp[k] = v
				}
				renameKey(cp, r.old, r.new)
				migrated[i] = cp
			}
			out["expectations"] = migrated
		}
	}

	return out
}

func renameKey(m map[string]any, old, new string) {
	v, ok := m[old]
	if !ok {
		return
	}
	delete(m, old)
	m[new] = v
}
