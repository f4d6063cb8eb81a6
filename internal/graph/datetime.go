package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime implements the DateTime scalar. Values are written as RFC 3339 in UTC.
type DateTime struct {
	time.Time
}

var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ImplementsGraphQLType maps this type to the DateTime scalar.
func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

// UnmarshalGraphQL accepts a string in one of the supported layouts, or a number of
// milliseconds since the Unix epoch.
func (t *DateTime) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case string:
		for _, layout := range dateTimeLayouts {
			if parsed, err := time.Parse(layout, v); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return fmt.Errorf("invalid DateTime %q", v)
	case int32:
		t.Time = time.UnixMilli(int64(v)).UTC()
	case int64:
		t.Time = time.UnixMilli(v).UTC()
	case int:
		t.Time = time.UnixMilli(int64(v)).UTC()
	case float64:
		t.Time = time.UnixMilli(int64(v)).UTC()
	default:
		return fmt.Errorf("wrong type for DateTime: %T", v)
	}
	return nil
}

func (t DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

func newDateTime(t *time.Time) *DateTime {
	if t == nil {
		return nil
	}
	return &DateTime{Time: *t}
}
