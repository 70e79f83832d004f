package supabase

import (
	"encoding/json"
	"fmt"
)

// errorBody is PostgREST's error envelope.
type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func apiError(table string, status int, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		return fmt.Errorf("supabase %s: %d %s (%s)", table, status, eb.Message, eb.Code)
	}
	return fmt.Errorf("supabase %s: unexpected status %d: %s", table, status, string(body))
}
