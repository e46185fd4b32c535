package jsonschema

// keywordStatus classifies a schema object's top-level keys the way the
// teacher's knownSchemaFields allowlist does, but split by what the
// resolver/validator do with each one rather than lumped into one set.
type keywordStatus int

const (
	// keywordUnknown means the key is not recognized at all; it is
	// treated as a harmless annotation, matching §7.3's "unrecognized
	// keywords are ignored" rule for genuinely unknown extensions.
	keywordUnknown keywordStatus = iota
	// keywordStructural keys drive resolution ($id, $ref, $defs, ...)
	// and are never evaluated against an instance.
	keywordStructural
	// keywordSupported keys are implemented validation keywords.
	keywordSupported
	// keywordUnsupported keys are valid JSON Schema that this module
	// deliberately does not implement; encountering one on a schema node
	// the validator visits is a fatal SchemaError, not a per-instance
	// failure. Schema intake does not check for them.
	keywordUnsupported
)

// structuralKeywords drive schema resolution rather than instance
// validation.
var structuralKeywords = map[string]keywordStatus{
	"$id":         keywordStructural,
	"$schema":     keywordStructural,
	"$ref":        keywordStructural,
	"$defs":       keywordStructural,
	"definitions": keywordStructural, // Draft-4 name for $defs
	"$comment":    keywordStructural,
	"title":       keywordStructural,
	"description": keywordStructural,
	"examples":    keywordStructural,
}

// supportedKeywords are the validation keywords this module evaluates,
// grounded in spec §4.4's object/array/string/numeric sections.
var supportedKeywords = map[string]keywordStatus{
	"type":                 keywordSupported,
	"enum":                 keywordSupported,
	"default":              keywordSupported,
	"items":                keywordSupported,
	"additionalItems":      keywordSupported,
	"maxItems":             keywordSupported,
	"minItems":             keywordSupported,
	"uniqueItems":          keywordSupported,
	"properties":           keywordSupported,
	"patternProperties":    keywordSupported,
	"additionalProperties": keywordSupported,
	"required":             keywordSupported,
	"maxProperties":        keywordSupported,
	"minProperties":        keywordSupported,
	"dependencies":         keywordSupported,
	"maxLength":            keywordSupported,
	"minLength":            keywordSupported,
	"maximum":              keywordSupported,
	"exclusiveMaximum":     keywordSupported,
	"minimum":              keywordSupported,
	"exclusiveMinimum":     keywordSupported,
	"multipleOf":           keywordSupported,
}

// unsupportedKeywords are syntactically valid JSON Schema keywords (from
// later drafts, or Draft-4 keywords this module does not implement) that
// are rejected with a named error when the validator visits a schema node
// carrying one, rather than silently ignored or misapplied (§7.3, and
// SPEC_FULL §12's "exhaustive, not spot-checked").
var unsupportedKeywords = map[string]keywordStatus{
	"format":                keywordUnsupported,
	"pattern":               keywordUnsupported,
	"allOf":                 keywordUnsupported,
	"anyOf":                 keywordUnsupported,
	"oneOf":                 keywordUnsupported,
	"not":                   keywordUnsupported,
	"if":                    keywordUnsupported,
	"then":                  keywordUnsupported,
	"else":                  keywordUnsupported,
	"const":                 keywordUnsupported,
	"contains":              keywordUnsupported,
	"minContains":           keywordUnsupported,
	"maxContains":           keywordUnsupported,
	"prefixItems":           keywordUnsupported,
	"unevaluatedItems":      keywordUnsupported,
	"unevaluatedProperties": keywordUnsupported,
	"propertyNames":         keywordUnsupported,
	"contentEncoding":       keywordUnsupported,
	"contentMediaType":      keywordUnsupported,
	"contentSchema":         keywordUnsupported,
	"dependentRequired":     keywordUnsupported,
	"dependentSchemas":      keywordUnsupported,
	"$anchor":               keywordUnsupported,
	"$dynamicRef":           keywordUnsupported,
	"$dynamicAnchor":        keywordUnsupported,
	"$recursiveRef":         keywordUnsupported,
	"$recursiveAnchor":      keywordUnsupported,
	"$vocabulary":           keywordUnsupported,
}

// classifyKeyword reports which class a schema object's key belongs to;
// the validator consults it for every schema node it visits.
func classifyKeyword(key string) keywordStatus {
	if s, ok := structuralKeywords[key]; ok {
		return s
	}
	if s, ok := supportedKeywords[key]; ok {
		return s
	}
	if s, ok := unsupportedKeywords[key]; ok {
		return s
	}
	return keywordUnknown
}
