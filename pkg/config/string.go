package config

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// StringSlice accepts either a single string or a list of strings. A single string may
// hold several comma separated values, e.g. "XBTUSD,ETHUSD".
type StringSlice []string

func (s *StringSlice) decode(a interface{}) error {
	switch d := a.(type) {
	case string:
		*s = append(*s, splitList(d)...)

	case []string:
		*s = append(*s, d...)

	case []interface{}:
		for _, de := range d {
			if err := s.decode(de); err != nil {
				return err
			}
		}

	default:
		return errors.Errorf("unexpected type %T for StringSlice: %+v", d, d)
	}

	return nil
}

func (s *StringSlice) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var ss []string
	err = unmarshal(&ss)
	if err == nil {
		*s = ss
		return
	}

	var as string
	err = unmarshal(&as)
	if err == nil {
		*s = append(*s, splitList(as)...)
	}

	return err
}

func (s *StringSlice) UnmarshalJSON(b []byte) error {
	var a interface{}
	var err = json.Unmarshal(b, &a)
	if err != nil {
		return err
	}

	return s.decode(a)
}

func splitList(s string) (out []string) {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// MaskSecret keeps the first 4 characters of s.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}

	if len(s) <= 4 {
		return "****"
	}

	return s[:4] + "******"
}

// Redacted returns a copy with the credentials masked, for display.
func (c Config) Redacted() Config {
	c.APIKey = MaskSecret(c.APIKey)
	c.APISecret = MaskSecret(c.APISecret)
	return c
}
