package pagination

import (
	"encoding/base64"
	"encoding/json"
)

type position struct {
	Key     int64 `json:"k"`
	Reverse bool  `json:"r,omitempty"`
}

func encodeCursor(s Seek) string {
	b, _ := json.Marshal(position{Key: s.Key, Reverse: s.Reverse})
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeCursor(token string) (*Seek, error) {
	invalid := &ValidationError{Param: CursorParam, Reason: "invalid cursor"}

	b, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, invalid
	}

	var p position
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, invalid
	}

	return &Seek{Key: p.Key, Reverse: p.Reverse}, nil
}
