// Package httpx provides the uniform JSON response envelope.
package httpx

import (
	"encoding/json"
	"net/http"
)

type successEnvelope struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

type failureEnvelope struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// OK sends {ok:true,data} with the given status code. A nil data is encoded
// as an explicit null so "absent" reads stay distinguishable from failures.
func OK(w http.ResponseWriter, status int, data any) {
	write(w, status, successEnvelope{OK: true, Data: data})
}

// Fail sends {ok:false,message} with the given status code.
func Fail(w http.ResponseWriter, status int, message string) {
	write(w, status, failureEnvelope{OK: false, Message: message})
}

func write(w http.ResponseWriter, status int, env any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// DecodeJSON decodes the request body into target. Unknown fields are ignored,
// matching the permissive body handling of the frontend clients.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
