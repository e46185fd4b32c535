package jsonschema

import (
	"math"
	"strconv"

	"github.com/arborschema/jsonschema/document"
)

// validateNumber evaluates multipleOf, maximum/exclusiveMaximum, and
// minimum/exclusiveMinimum (§4.4.4) against a numeric instance, operating
// throughout on its float64 value per the documented limitation that very
// large integer magnitudes are not handled with arbitrary precision.
//
// exclusiveMaximum/exclusiveMinimum follow the Draft-4 boolean-modifier
// form (paired with maximum/minimum) rather than the later drafts' form
// where they carry their own numeric bound; this module targets Draft-4
// semantics throughout, so a schema author who writes `"exclusiveMaximum": 5`
// with no accompanying `"maximum"` gets no effect, matching how Draft-4
// itself defines the keyword.
func validateNumber(schemaObj *document.Object, scope SchemaURI, instance *document.Node, path string) error {
	n, _ := instance.Float64()

	if moNode, ok := schemaObj.Get("multipleOf"); ok {
		mo, _ := moNode.Float64()
		if mo > 0 {
			q := n / mo
			if math.Abs(q-math.Round(q)) > 1e-9 {
				return newValidationError(path, scope, "multipleOf",
					"{value} is not a multiple of {divisor}",
					map[string]string{"value": formatNumber(n), "divisor": formatNumber(mo)})
			}
		}
	}

	if maxNode, ok := schemaObj.Get("maximum"); ok {
		max, _ := maxNode.Float64()
		exclusive := false
		if exNode, ok := schemaObj.Get("exclusiveMaximum"); ok {
			exclusive, _ = exNode.Bool()
		}
		if (exclusive && n >= max) || (!exclusive && n > max) {
			return newValidationError(path, scope, "maximum",
				"{value} exceeds the maximum of {max}",
				map[string]string{"value": formatNumber(n), "max": formatNumber(max)})
		}
	}

	if minNode, ok := schemaObj.Get("minimum"); ok {
		min, _ := minNode.Float64()
		exclusive := false
		if exNode, ok := schemaObj.Get("exclusiveMinimum"); ok {
			exclusive, _ = exNode.Bool()
		}
		if (exclusive && n <= min) || (!exclusive && n < min) {
			return newValidationError(path, scope, "minimum",
				"{value} is below the minimum of {min}",
				map[string]string{"value": formatNumber(n), "min": formatNumber(min)})
		}
	}

	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
