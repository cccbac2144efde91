package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

type ExchangeName string

func (n ExchangeName) String() string {
	return string(n)
}

func (n *ExchangeName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	name, err := ValidExchangeName(s)
	if err != nil {
		return err
	}

	*n = name
	return nil
}

const (
	ExchangeKraken = ExchangeName("kraken")
)

var SupportedExchanges = []ExchangeName{ExchangeKraken}

func ValidExchangeName(a string) (ExchangeName, error) {
	switch strings.ToLower(a) {
	case "kraken", "kr":
		return ExchangeKraken, nil
	}

	return "", fmt.Errorf("invalid exchange name: %s", a)
}
