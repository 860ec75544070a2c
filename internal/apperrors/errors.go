package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error es el error de negocio que los handlers traducen a HTTP.
type Error struct {
	Codigo  int    `json:"-"`
	Mensaje string `json:"message"`
}

func (e *Error) Error() string {
	return e.Mensaje
}

func Validacion(mensaje string) *Error {
	return &Error{Codigo: http.StatusBadRequest, Mensaje: mensaje}
}

func NoAutorizado(mensaje string) *Error {
	return &Error{Codigo: http.StatusUnauthorized, Mensaje: mensaje}
}

func Prohibido(mensaje string) *Error {
	return &Error{Codigo: http.StatusForbidden, Mensaje: mensaje}
}

func NoEncontrado(recurso string) *Error {
	return &Error{Codigo: http.StatusNotFound, Mensaje: fmt.Sprintf("%s no encontrado", recurso)}
}

func Duplicado(campo string) *Error {
	return &Error{Codigo: http.StatusConflict, Mensaje: fmt.Sprintf("%s ya registrado", campo)}
}

// ReferenciaCruzada indica que una referencia apunta a un registro de otra
// empresa. Se responde 403: el registro existe pero no pertenece al tenant.
func ReferenciaCruzada(recurso string) *Error {
	return &Error{Codigo: http.StatusForbidden, Mensaje: fmt.Sprintf("%s pertenece a otra empresa", recurso)}
}

// CodigoHTTP devuelve el status para cualquier error; 500 si no es de negocio.
func CodigoHTTP(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Codigo
	}
	return http.StatusInternalServerError
}

// EsCodigo permite a los tests y repositorios distinguir la categoría.
func EsCodigo(err error, codigo int) bool {
	var e *Error
	return errors.As(err, &e) && e.Codigo == codigo
}
