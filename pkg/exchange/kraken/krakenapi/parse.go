package krakenapi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/valyala/fastjson"
)

func typeName(v *fastjson.Value) string {
	if v == nil {
		return "missing"
	}
	return v.Type().String()
}

func isAbsent(v *fastjson.Value) bool {
	return v == nil || v.Type() == fastjson.TypeNull
}

func member(parent, name string) string {
	return parent + "." + name
}

func index(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

func getObject(v *fastjson.Value, field string) (*fastjson.Object, error) {
	if v == nil || v.Type() != fastjson.TypeObject {
		return nil, &UnexpectedShapeError{Field: field, Expected: "object", Actual: typeName(v)}
	}

	obj, _ := v.Object()
	return obj, nil
}

func getArray(v *fastjson.Value, field string) ([]*fastjson.Value, error) {
	if v == nil || v.Type() != fastjson.TypeArray {
		return nil, &UnexpectedShapeError{Field: field, Expected: "array", Actual: typeName(v)}
	}

	arr, _ := v.Array()
	return arr, nil
}

// element returns arr[i] of a positional array such as ["30010.0", "1", "1.000"].
func element(arr []*fastjson.Value, i int, field string) (*fastjson.Value, error) {
	if i >= len(arr) {
		return nil, &UnexpectedShapeError{
			Field:    index(field, i),
			Expected: "array element",
			Actual:   fmt.Sprintf("array of length %d", len(arr)),
		}
	}
	return arr[i], nil
}

// visitObject visits the members of obj in document order and stops at the first error.
func visitObject(obj *fastjson.Object, f func(key string, v *fastjson.Value) error) error {
	var err error
	obj.Visit(func(k []byte, v *fastjson.Value) {
		if err != nil {
			return
		}
		err = f(string(k), v)
	})
	return err
}

// parseDecimal parses a required numeric field. The venue sends numbers as JSON strings,
// plain JSON numbers are accepted too.
func parseDecimal(v *fastjson.Value, field string) (decimal.Decimal, error) {
	var s string
	switch typeName(v) {
	case "string":
		s = string(v.GetStringBytes())
	case "number":
		s = v.String()
	default:
		return decimal.Zero, &UnexpectedShapeError{Field: field, Expected: "decimal string", Actual: typeName(v)}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &FieldParseError{Field: field, Value: s, Err: err}
	}
	return d, nil
}

// optionalDecimal is parseDecimal for fields the venue may omit or leave empty. A value
// that is present but not numeric still fails.
func optionalDecimal(v *fastjson.Value, field string) (decimal.Decimal, error) {
	if isAbsent(v) {
		return decimal.Zero, nil
	}

	if v.Type() == fastjson.TypeString && len(v.GetStringBytes()) == 0 {
		return decimal.Zero, nil
	}

	return parseDecimal(v, field)
}

// parseDecimalElement parses arr[i] of a positional array.
func parseDecimalElement(arr []*fastjson.Value, i int, field string) (decimal.Decimal, error) {
	v, err := element(arr, i, field)
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimal(v, index(field, i))
}

// parseDecimalAt parses element i of the array stored in obj[name].
func parseDecimalAt(obj *fastjson.Object, name string, i int, field string) (decimal.Decimal, error) {
	arr, err := getArray(obj.Get(name), member(field, name))
	if err != nil {
		return decimal.Zero, err
	}
	return parseDecimalElement(arr, i, member(field, name))
}

func parseInt64(v *fastjson.Value, field string) (int64, error) {
	var s string
	switch typeName(v) {
	case "string":
		s = string(v.GetStringBytes())
	case "number":
		s = v.String()
	default:
		return 0, &UnexpectedShapeError{Field: field, Expected: "integer", Actual: typeName(v)}
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &FieldParseError{Field: field, Value: s, Err: err}
	}
	return n, nil
}

func optionalInt64(v *fastjson.Value, field string) (int64, error) {
	if isAbsent(v) {
		return 0, nil
	}
	return parseInt64(v, field)
}

func parseString(v *fastjson.Value, field string) (string, error) {
	if v == nil || v.Type() != fastjson.TypeString {
		return "", &UnexpectedShapeError{Field: field, Expected: "string", Actual: typeName(v)}
	}
	return string(v.GetStringBytes()), nil
}

func optionalString(v *fastjson.Value) string {
	if v == nil || v.Type() != fastjson.TypeString {
		return ""
	}
	return string(v.GetStringBytes())
}

func optionalBool(v *fastjson.Value) bool {
	return v != nil && v.Type() == fastjson.TypeTrue
}

// parseTimestamp parses unix seconds with an optional fraction, e.g. 1688666559.8974 or
// "1688666559".
func parseTimestamp(v *fastjson.Value, field string) (time.Time, error) {
	d, err := parseDecimal(v, field)
	if err != nil {
		return time.Time{}, err
	}
	return secondsToTime(d), nil
}

// optionalTimestamp treats an absent field and the venue's 0 placeholder as the zero time.
func optionalTimestamp(v *fastjson.Value, field string) (time.Time, error) {
	d, err := optionalDecimal(v, field)
	if err != nil || d.IsZero() {
		return time.Time{}, err
	}
	return secondsToTime(d), nil
}

func secondsToTime(d decimal.Decimal) time.Time {
	return time.Unix(0, d.Shift(9).IntPart())
}

// pairResult picks the entry of pair from a result keyed by the venue pair name. The venue
// answers with its own name (XXBTZUSD for XBTUSD), so a single entry is accepted whatever
// its key is. The "last" cursor member is never a pair.
func pairResult(result *fastjson.Value, pair string) (string, *fastjson.Value, error) {
	obj, err := getObject(result, "result")
	if err != nil {
		return "", nil, err
	}

	if v := obj.Get(pair); v != nil {
		return pair, v, nil
	}

	var (
		name  string
		value *fastjson.Value
		count int
	)
	obj.Visit(func(k []byte, v *fastjson.Value) {
		if string(k) == "last" {
			return
		}
		count++
		name, value = string(k), v
	})

	if count != 1 {
		return "", nil, &UnexpectedShapeError{
			Field:    member("result", pair),
			Expected: "pair entry",
			Actual:   fmt.Sprintf("%d entries", count),
		}
	}

	return name, value, nil
}
