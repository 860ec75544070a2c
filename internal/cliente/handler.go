package cliente

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
	"github.com/segurtec/api-instalaciones/internal/utils"
)

type clienteRequest struct {
	EmpresaID     uint     `json:"empresa_id"`
	Nombre        string   `json:"nombre"`
	Telefono      string   `json:"telefono"`
	Email         string   `json:"email"`
	Direccion     string   `json:"direccion"`
	Lat           *float64 `json:"lat"`
	Lng           *float64 `json:"lng"`
	Observaciones string   `json:"observaciones"`
	Activo        *bool    `json:"activo"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.Nombre == "" {
		utils.ResponderError(w, apperrors.Validacion("nombre es obligatorio"))
		return
	}

	var c Cliente
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		empresaID, err := tenancy.ResolverEmpresa(tx, req.EmpresaID, auth.EmpresaDeContexto(r.Context()))
		if err != nil {
			return err
		}
		c = Cliente{
			EmpresaID:     empresaID,
			Nombre:        req.Nombre,
			Telefono:      req.Telefono,
			Email:         req.Email,
			Direccion:     req.Direccion,
			Lat:           req.Lat,
			Lng:           req.Lng,
			Observaciones: req.Observaciones,
			Activo:        true,
		}
		return h.Repository.Crear(tx, &c)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"cliente": c})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorEmpresa(h.DB, auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"clientes": list})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	c, err := h.Repository.BuscarPorID(h.DB, uint(id), auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"cliente": c})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req clienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}

	var c *Cliente
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		c, errTx = h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if req.Nombre != "" {
			c.Nombre = req.Nombre
		}
		if req.Telefono != "" {
			c.Telefono = req.Telefono
		}
		if req.Email != "" {
			c.Email = req.Email
		}
		if req.Direccion != "" {
			c.Direccion = req.Direccion
		}
		if req.Lat != nil {
			c.Lat = req.Lat
		}
		if req.Lng != nil {
			c.Lng = req.Lng
		}
		if req.Observaciones != "" {
			c.Observaciones = req.Observaciones
		}
		if req.Activo != nil {
			c.Activo = *req.Activo
		}
		return h.Repository.Actualizar(tx, c)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"cliente": c})
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		c, errTx := h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		return h.Repository.Eliminar(tx, c.ID)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Cliente eliminado")
}
