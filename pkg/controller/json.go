package controller

import (
	"net/http"

	"github.com/go-faster/jx"
)

// Encodable is implemented by response bodies that know how to write
// themselves with jx.
type Encodable interface {
	Encode(e *jx.Encoder)
}

// WriteJSON writes v as the JSON body of a response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v Encodable) {
	var e jx.Encoder
	v.Encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
