package presupuesto_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/cliente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
	"github.com/segurtec/api-instalaciones/internal/testutil"
	"github.com/segurtec/api-instalaciones/internal/usuario"
)

func hacerRequest(h http.HandlerFunc, cuerpo string, empresaID, usuarioID uint) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(cuerpo))
	ctx := context.WithValue(req.Context(), auth.CtxEmpresaID, empresaID)
	ctx = context.WithValue(ctx, auth.CtxUsuarioID, usuarioID)
	w := httptest.NewRecorder()
	h(w, req.WithContext(ctx))
	return w
}

func TestCrearCopiaContactoDelCliente(t *testing.T) {
	db := testutil.DB(t)
	h := presupuesto.NewHandler(db)
	emp := testutil.Empresa(t, db, "A")
	u := &usuario.Usuario{
		EmpresaID: emp.ID, Nombre: "Vendedor", Email: "v@test.com",
		Password: "x", Rol: usuario.RolAdmin, Activo: true,
	}
	require.NoError(t, db.Create(u).Error)

	c := &cliente.Cliente{
		EmpresaID: emp.ID, Nombre: "Carlos Ruiz",
		Telefono: "600111222", Email: "carlos@test.com",
		Direccion: "Av. Mitre 120", Activo: true,
	}
	require.NoError(t, db.Create(c).Error)

	cuerpo := fmt.Sprintf(`{"cliente_id":%d,"tipo_sistema":"ALARMAS","total":880,
		"componentes":[{"nombre":"Central","cantidad":1,"precio":400}]}`, c.ID)
	w := hacerRequest(h.Crear, cuerpo, emp.ID, u.ID)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Presupuesto presupuesto.Presupuesto `json:"presupuesto"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	p := resp.Presupuesto

	// la copia de contacto se toma del alta del cliente
	assert.Equal(t, "Carlos Ruiz", p.ClienteNombre)
	assert.Equal(t, "600111222", p.ClienteTelefono)
	assert.Equal(t, "carlos@test.com", p.ClienteEmail)
	assert.Equal(t, "Av. Mitre 120", p.ClienteDireccion)
	require.NotNil(t, p.CreadoPor)
	assert.Equal(t, u.ID, *p.CreadoPor)
	assert.Len(t, p.Componentes, 1)

	// editar el cliente después no toca la copia guardada
	require.NoError(t, db.Model(c).Update("telefono", "699000000").Error)
	guardado := &presupuesto.Presupuesto{}
	require.NoError(t, db.First(guardado, p.ID).Error)
	assert.Equal(t, "600111222", guardado.ClienteTelefono)
	assert.Equal(t, "pendiente", guardado.Estado)
}

func TestCrearSinClienteUsaDatosDelCuerpo(t *testing.T) {
	db := testutil.DB(t)
	h := presupuesto.NewHandler(db)
	emp := testutil.Empresa(t, db, "A")

	cuerpo := `{"cliente_nombre":"Prospecto","cliente_telefono":"611222333","tipo_sistema":"CAMARAS"}`
	w := hacerRequest(h.Crear, cuerpo, emp.ID, 1)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Presupuesto presupuesto.Presupuesto `json:"presupuesto"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp.Presupuesto.ClienteID)
	assert.Equal(t, "Prospecto", resp.Presupuesto.ClienteNombre)
}
