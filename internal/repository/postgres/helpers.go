package postgres

import (
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
)

// --- Helpers ---

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func ptrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func strToPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func marshalJSON(v interface{}) []byte {
	if v == nil {
		return nil
	}
	bytes, _ := json.Marshal(v)
	return bytes
}

func unmarshalStringSlice(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func unmarshalStringMap(data []byte) map[string]string {
	if len(data) == 0 {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}
