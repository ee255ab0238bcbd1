package rules

import "fmt"

// PropertyValue is one dynamically-typed value of a rule property bag.
// Exactly one variant is active at a time. The set is closed: rules match on
// the variants when validating their options, no reflection involved.
type PropertyValue interface {
	propertyValue()
}

// StringProperty is a string-valued property.
type StringProperty string

func (StringProperty) propertyValue() {}

// NumberProperty is a numeric property.
type NumberProperty float64

func (NumberProperty) propertyValue() {}

// BoolProperty is a boolean property.
type BoolProperty bool

func (BoolProperty) propertyValue() {}

// MapProperty is a nested property bag.
type MapProperty map[string]PropertyValue

func (MapProperty) propertyValue() {}

// RuleProperties maps option names to values. It is the in-memory form of a
// rule's declarative configuration; the wire encoding it was decoded from is
// the caller's concern.
type RuleProperties map[string]PropertyValue

// PropertiesFromMap converts a dynamic document, as produced by a config
// decoder such as yaml.Unmarshal, into a property bag. Values that do not
// fit any PropertyValue variant are rejected with an InvalidPropertyValue
// error naming the key.
func PropertiesFromMap(values map[string]any) (RuleProperties, error) {
	properties := make(RuleProperties, len(values))
	for key, value := range values {
		converted, err := propertyFromValue(value)
		if err != nil {
			return nil, NewInvalidPropertyValue(key, err.Error())
		}
		properties[key] = converted
	}
	return properties, nil
}

// ToMap converts the bag back into a dynamic document, the inverse of
// PropertiesFromMap.
func (p RuleProperties) ToMap() map[string]any {
	values := make(map[string]any, len(p))
	for key, property := range p {
		values[key] = propertyToValue(property)
	}
	return values
}

func propertyFromValue(value any) (PropertyValue, error) {
	switch v := value.(type) {
	case string:
		return StringProperty(v), nil
	case bool:
		return BoolProperty(v), nil
	case int:
		return NumberProperty(v), nil
	case int64:
		return NumberProperty(v), nil
	case float64:
		return NumberProperty(v), nil
	case map[string]any:
		nested, err := PropertiesFromMap(v)
		if err != nil {
			return nil, err
		}
		return MapProperty(nested), nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", value)
	}
}

func propertyToValue(property PropertyValue) any {
	switch v := property.(type) {
	case StringProperty:
		return string(v)
	case NumberProperty:
		return float64(v)
	case BoolProperty:
		return bool(v)
	case MapProperty:
		return RuleProperties(v).ToMap()
	default:
		panic("rules: unknown property value type")
	}
}
