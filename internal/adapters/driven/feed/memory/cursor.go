package memory

import (
	"encoding/base64"
	"encoding/json"

	"github.com/custodia-labs/blobfeed/internal/core/domain"
)

// CursorVersion is the current cursor format version.
const CursorVersion = 1

// Cursor marks a position in an in-memory feed.
type Cursor struct {
	// Version is the cursor format version for future compatibility.
	Version int `json:"v"`
	// NextIndex is the index of the first unconsumed event.
	NextIndex int `json:"next_index"`
}

// Encode serialises the cursor to a base64 string for storage.
func (c *Cursor) Encode() string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeCursor deserialises a cursor from a base64 string.
func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return &Cursor{Version: CursorVersion}, nil
	}

	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, domain.ErrInvalidCursor
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil {
		return nil, domain.ErrInvalidCursor
	}

	// Version check for future migrations
	if cursor.Version > CursorVersion {
		return nil, domain.ErrInvalidCursor
	}

	return &cursor, nil
}
