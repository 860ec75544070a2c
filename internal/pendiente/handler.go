package pendiente

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
	"github.com/segurtec/api-instalaciones/internal/tipos"
	"github.com/segurtec/api-instalaciones/internal/utils"
)

type pendienteRequest struct {
	EmpresaID     uint        `json:"empresa_id"`
	ClienteID     uint        `json:"cliente_id"`
	InstalacionID uint        `json:"instalacion_id"`
	Fecha         tipos.Fecha `json:"fecha"`
	Notas         string      `json:"notas"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req pendienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.ClienteID == 0 || req.InstalacionID == 0 || req.Fecha.IsZero() {
		utils.ResponderError(w, apperrors.Validacion("cliente_id, instalacion_id y fecha son obligatorios"))
		return
	}

	var p Pendiente
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		empresaID, err := tenancy.ResolverEmpresa(tx, req.EmpresaID, auth.EmpresaDeContexto(r.Context()))
		if err != nil {
			return err
		}
		p = Pendiente{
			EmpresaID:     empresaID,
			ClienteID:     req.ClienteID,
			InstalacionID: req.InstalacionID,
			Fecha:         req.Fecha,
			Notas:         req.Notas,
		}
		return h.Repository.Crear(tx, &p)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"pendiente": p})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorEmpresa(h.DB, auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"pendientes": list})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	p, err := h.Repository.BuscarPorID(h.DB, uint(id), auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"pendiente": p})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req pendienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}

	var p *Pendiente
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		p, errTx = h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if req.ClienteID != 0 {
			p.ClienteID = req.ClienteID
		}
		if req.InstalacionID != 0 {
			p.InstalacionID = req.InstalacionID
		}
		if !req.Fecha.IsZero() {
			p.Fecha = req.Fecha
		}
		if req.Notas != "" {
			p.Notas = req.Notas
		}
		return h.Repository.Actualizar(tx, p)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"pendiente": p})
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		p, errTx := h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		return h.Repository.Eliminar(tx, p.ID)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Pendiente eliminado")
}
