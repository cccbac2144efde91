package krakenapi

import (
	"github.com/valyala/fastjson"
)

const maxBodyExcerpt = 256

// parseEnvelope unwraps {"error": [...], "result": ...}. A non-empty error list always
// wins, result is not looked at in that case.
func parseEnvelope(body []byte) (*fastjson.Value, error) {
	var p fastjson.Parser
	val, err := p.ParseBytes(body)
	if err != nil {
		return nil, &MalformedResponseError{Body: excerpt(body), Err: err}
	}

	if val.Type() != fastjson.TypeObject {
		return nil, &UnexpectedShapeError{Field: "$", Expected: "object", Actual: val.Type().String()}
	}

	if errVal := val.Get("error"); errVal != nil && errVal.Type() != fastjson.TypeNull {
		if errVal.Type() != fastjson.TypeArray {
			return nil, &UnexpectedShapeError{Field: "error", Expected: "array", Actual: errVal.Type().String()}
		}

		items, _ := errVal.Array()
		if len(items) > 0 {
			messages := make([]string, 0, len(items))
			for _, item := range items {
				if item.Type() == fastjson.TypeString {
					messages = append(messages, string(item.GetStringBytes()))
				} else {
					messages = append(messages, item.String())
				}
			}
			return nil, &APIError{Messages: messages}
		}
	}

	result := val.Get("result")
	if result == nil {
		return nil, &UnexpectedShapeError{Field: "result", Expected: "object or array", Actual: "missing"}
	}

	if t := result.Type(); t != fastjson.TypeObject && t != fastjson.TypeArray {
		return nil, &UnexpectedShapeError{Field: "result", Expected: "object or array", Actual: t.String()}
	}

	return result, nil
}

func excerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		return string(body[:maxBodyExcerpt]) + "..."
	}
	return string(body)
}
