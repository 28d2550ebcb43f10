package duration

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.uber.org/zap/zapcore" // Logging.
	"gopkg.in/yaml.v3"        // YAML config encoding.
)

// Durations are encoded as an integer nanosecond count.
// Strings like "5s" are rejected when decoding.

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, d.ns, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return fmt.Errorf("duration must be a number of nanoseconds, got %s", b)
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	v, err := decodeNumber(string(n))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.ns, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	switch value.ShortTag() {
	case "!!null":
		return nil
	case "!!int", "!!float":
	default:
		return fmt.Errorf("line %d: duration must be a number of nanoseconds, got %q", value.Line, value.Value)
	}
	if value.ShortTag() == "!!int" {
		var i int64
		if err := value.Decode(&i); err == nil {
			*d = fromInt(i)
			return nil
		}
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return fmt.Errorf("line %d: %q: %w", value.Line, value.Value, ErrInvalidDuration)
	}
	v, err := FromNanos(f)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = v
	return nil
}

// decodeNumber decodes a nanosecond count, exactly when it's an integer.
func decodeNumber(s string) (Duration, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromInt(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Zero, fmt.Errorf("%q: %w", s, ErrInvalidDuration)
	}
	return FromNanos(f)
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (d Duration) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("nanos", d.ns)
	enc.AddString("display", d.String())
	return nil
}
