package empresa

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/utils"
)

type empresaRequest struct {
	Nombre      string `json:"nombre"`
	Plan        string `json:"plan"`
	MaxUsuarios int    `json:"max_usuarios"`
	Activa      *bool  `json:"activa"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req empresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.Nombre == "" {
		utils.ResponderError(w, apperrors.Validacion("nombre es obligatorio"))
		return
	}

	e := Empresa{
		Nombre:      req.Nombre,
		Plan:        req.Plan,
		MaxUsuarios: req.MaxUsuarios,
		Activa:      true,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		return h.Repository.Crear(tx, &e)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"empresa": e})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.Listar(h.DB)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"empresas": list})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	e, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"empresa": e})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo.
// Cada usuario puede modificar únicamente su propia empresa.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	if uint(id) != auth.EmpresaDeContexto(r.Context()) {
		utils.ResponderError(w, apperrors.ReferenciaCruzada("empresa"))
		return
	}
	var req empresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}

	var e *Empresa
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		e, errTx = h.Repository.BuscarPorID(tx, uint(id))
		if errTx != nil {
			return errTx
		}
		if req.Nombre != "" {
			e.Nombre = req.Nombre
		}
		if req.Plan != "" {
			e.Plan = req.Plan
		}
		if req.MaxUsuarios != 0 {
			e.MaxUsuarios = req.MaxUsuarios
		}
		if req.Activa != nil {
			e.Activa = *req.Activa
		}
		return h.Repository.Actualizar(tx, e)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"empresa": e})
}

// Eliminar borra la propia empresa con todo lo que depende de ella.
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	if uint(id) != auth.EmpresaDeContexto(r.Context()) {
		utils.ResponderError(w, apperrors.ReferenciaCruzada("empresa"))
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		e, errTx := h.Repository.BuscarPorID(tx, uint(id))
		if errTx != nil {
			return errTx
		}
		return h.Repository.Eliminar(tx, e.ID)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Empresa eliminada")
}
