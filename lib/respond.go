package lib

import (
	"encoding/json"
	"net/http"
)

// The storefront consumes fixed wire shapes on /send-email and /track-order:
// {"data": ...}, {"error": ...} and the lookup result object. These writers
// keep those shapes exact. Routes outside the storefront contract (root,
// health, 404) use gecho's response helpers instead.

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, map[string]any{"data": data})
}

func WriteError(w http.ResponseWriter, status int, err any) {
	WriteJSON(w, status, map[string]any{"error": err})
}
