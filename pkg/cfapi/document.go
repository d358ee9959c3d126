package cfapi

// Document is a schemaless JSON object, used for free-form payloads such as
// audit-log metadata. Callers that need typed access convert explicitly via
// the accessor methods; everything else stays untyped.
type Document map[string]interface{}

// Get returns the raw property value.
func (d Document) Get(key string) (interface{}, bool) {
	value, ok := d[key]

	return value, ok
}

// GetString returns the property as a string, when present and a string.
func (d Document) GetString(key string) (string, bool) {
	value, ok := d[key].(string)

	return value, ok
}

// GetInt returns the property as an int64. JSON numbers decode as float64;
// the fractional part must be zero for the conversion to succeed.
func (d Document) GetInt(key string) (int64, bool) {
	switch value := d[key].(type) {
	case float64:
		whole := int64(value)
		if float64(whole) == value {
			return whole, true
		}

		return 0, false
	case int64:
		return value, true
	default:
		return 0, false
	}
}

// GetFloat returns the property as a float64.
func (d Document) GetFloat(key string) (float64, bool) {
	value, ok := d[key].(float64)

	return value, ok
}

// GetBool returns the property as a bool.
func (d Document) GetBool(key string) (bool, bool) {
	value, ok := d[key].(bool)

	return value, ok
}

// GetDocument returns a nested object as a Document.
func (d Document) GetDocument(key string) (Document, bool) {
	value, ok := d[key].(map[string]interface{})
	if !ok {
		return nil, false
	}

	return Document(value), true
}
