package rules

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Bulk is carried weight in tenths of a bulk unit. Light items are one
// tenth so ten of them sum to exactly one.
type Bulk int

// Common bulk values
const (
	Negligible Bulk = 0
	Light      Bulk = 1
)

// Whole returns n full bulk
func Whole(n int) Bulk {
	return Bulk(n * 10)
}

// Float returns the bulk in display units
func (b Bulk) Float() float64 {
	return float64(b) / 10
}

// String renders "L", "-" or the number
func (b Bulk) String() string {
	switch {
	case b == Light:
		return "L"
	case b == Negligible:
		return "-"
	case b%10 == 0:
		return strconv.Itoa(int(b) / 10)
	default:
		return strconv.FormatFloat(b.Float(), 'f', 1, 64)
	}
}

// ParseBulk reads "L", "-", "" or a number
func ParseBulk(s string) (Bulk, error) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "L":
		return Light, nil
	case "", "-", "—":
		return Negligible, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bulk %q", s)
	}
	return fromFloat(f)
}

func fromFloat(f float64) (Bulk, error) {
	if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid bulk %v", f)
	}
	return Bulk(math.Round(f * 10)), nil
}

// MarshalJSON writes light bulk as "L" and whole bulk as a number
func (b Bulk) MarshalJSON() ([]byte, error) {
	if b == Light {
		return []byte(`"L"`), nil
	}
	return json.Marshal(b.Float())
}

// UnmarshalJSON accepts "L", numeric strings and numbers
func (b *Bulk) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseBulk(s)
		if err != nil {
			return err
		}
		*b = parsed
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("invalid bulk %s", string(data))
	}
	parsed, err := fromFloat(f)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// UnmarshalYAML accepts the same forms as JSON
func (b *Bulk) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseBulk(value.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
