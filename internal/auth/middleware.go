package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/segurtec/api-instalaciones/internal/utils"
)

type ctxKey string

const (
	CtxUsuarioID ctxKey = "usuarioID"
	CtxEmpresaID ctxKey = "empresaID"
	CtxRol       ctxKey = "rol"
)

// Middleware exige un Bearer token válido y deja la identidad en el contexto.
func (j *JWT) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			utils.ResponderMensaje(w, http.StatusUnauthorized, "token ausente")
			return
		}
		claims, err := j.ValidarToken(strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			utils.ResponderMensaje(w, http.StatusUnauthorized, "token inválido")
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, claims.UsuarioID)
		ctx = context.WithValue(ctx, CtxEmpresaID, claims.EmpresaID)
		ctx = context.WithValue(ctx, CtxRol, claims.Rol)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// EmpresaDeContexto devuelve el tenant del request autenticado.
func EmpresaDeContexto(ctx context.Context) uint {
	id, _ := ctx.Value(CtxEmpresaID).(uint)
	return id
}

// UsuarioDeContexto devuelve el id del usuario autenticado.
func UsuarioDeContexto(ctx context.Context) uint {
	id, _ := ctx.Value(CtxUsuarioID).(uint)
	return id
}
