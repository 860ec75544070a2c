package utils

import (
	"encoding/json"
	"net/http"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
)

// ResponderJSON serializa v con el status indicado.
func ResponderJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ResponderMensaje envía el cuerpo estándar {"message": ...}.
func ResponderMensaje(w http.ResponseWriter, status int, mensaje string) {
	ResponderJSON(w, status, map[string]string{"message": mensaje})
}

// ResponderError traduce el error de negocio a su status; todo lo que no
// pertenece a la taxonomía sale como 500 genérico.
func ResponderError(w http.ResponseWriter, err error) {
	codigo := apperrors.CodigoHTTP(err)
	mensaje := err.Error()
	if codigo == http.StatusInternalServerError {
		mensaje = "error interno del servidor"
	}
	ResponderMensaje(w, codigo, mensaje)
}
