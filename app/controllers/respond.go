package controllers

import (
	"encoding/json"
	"net/http"

	"death-registry/app/dto"
)

func respond(w http.ResponseWriter, status int, ok bool, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.Response{OK: ok, Message: message, Data: data})
}

func respondOK(w http.ResponseWriter, status int, message string, data any) {
	respond(w, status, true, message, data)
}

func respondFail(w http.ResponseWriter, status int, message string, data any) {
	respond(w, status, false, message, data)
}
