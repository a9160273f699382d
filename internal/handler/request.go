package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/obaro89/afridev-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into v. An empty body leaves v zeroed so
// field validation reports what is missing.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return domain.Validation([]domain.FieldError{{Msg: "Invalid request body"}})
}

// csv accepts either "go, sql" or ["go", "sql"].
type csv string

func (c *csv) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*c = csv(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err != nil {
		return err
	}
	*c = csv(strings.Join(list, ","))
	return nil
}
