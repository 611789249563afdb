package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/triviahq/trivia-api/models"
)

const maxBodyBytes = 1 << 20

// Int decodes a JSON number or a numeric string, as sent by form-based clients.
type Int int

func (i *Int) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", data)
	}
	*i = Int(n)
	return nil
}

// PageParam reads the 1-based "page" query argument. Missing or non-numeric means 1.
func PageParam(r *http.Request) int {
	if pStr := r.URL.Query().Get("page"); pStr != "" {
		if p, err := strconv.Atoi(pStr); err == nil {
			return p
		}
	}
	return 1
}

// PathID parses a non-negative integer path value.
func PathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, models.NewNotFoundError(fmt.Sprintf("invalid %s %q", name, r.PathValue(name)))
	}
	return uint(id), nil
}

// DecodeObject reads a JSON object body into its top-level fields.
// An empty body yields an empty object.
func DecodeObject(r *http.Request) (map[string]json.RawMessage, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, models.NewBadRequestError("failed to read body", err)
	}

	fields := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, models.NewBadRequestError("invalid JSON body", err)
	}
	if fields == nil {
		fields = map[string]json.RawMessage{}
	}
	return fields, nil
}

// Field decodes one top-level field. Present reports whether the key was sent.
// Type mismatches are unprocessable.
func Field(fields map[string]json.RawMessage, key string, dst any) (present bool, err error) {
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return true, models.NewError(models.KindUnprocessable, "invalid "+key, err)
	}
	return true, nil
}
