package hcl_adapter

import "github.com/zclconf/go-cty/cty"

// usable reports whether val carries a concrete value that can be inspected.
func usable(val cty.Value) bool {
	return val.Type() != cty.NilType && val.IsWhollyKnown() && !val.IsNull()
}

func stringValue(val cty.Value) (string, bool) {
	if !usable(val) || !val.Type().Equals(cty.String) {
		return "", false
	}
	return val.AsString(), true
}

// sequence returns the elements of a tuple, list, or set. The slice is
// non-nil for an empty sequence so that "[]" stays distinguishable from an
// absent attribute.
func sequence(val cty.Value) ([]cty.Value, bool) {
	if !usable(val) {
		return nil, false
	}
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() && !ty.IsSetType() {
		return nil, false
	}
	elems := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		elems = append(elems, elem)
	}
	return elems, true
}

// isMapping reports whether val is an object or a map.
func isMapping(val cty.Value) bool {
	if !usable(val) {
		return false
	}
	ty := val.Type()
	return ty.IsObjectType() || ty.IsMapType()
}

// attributes flattens an object or map value into its named elements.
func attributes(val cty.Value) map[string]cty.Value {
	out := make(map[string]cty.Value)
	if !isMapping(val) {
		return out
	}
	for it := val.ElementIterator(); it.Next(); {
		key, elem := it.Element()
		out[key.AsString()] = elem
	}
	return out
}
