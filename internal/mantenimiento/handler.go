package mantenimiento

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

type mantenimientoRequest struct {
	EmpresaID     uint        `json:"empresa_id"`
	InstalacionID uint        `json:"instalacion_id"`
	RealizadoPor  *uint       `json:"realizado_por"`
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
	var req mantenimientoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.InstalacionID == 0 || req.Fecha.IsZero() {
		utils.ResponderError(w, apperrors.Validacion("instalacion_id y fecha son obligatorios"))
		return
	}

	var m Mantenimiento
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		empresaID, err := tenancy.ResolverEmpresa(tx, req.EmpresaID, auth.EmpresaDeContexto(r.Context()))
		if err != nil {
			return err
		}
		m = Mantenimiento{
			EmpresaID:     empresaID,
			InstalacionID: req.InstalacionID,
			RealizadoPor:  req.RealizadoPor,
			Fecha:         req.Fecha,
			Notas:         req.Notas,
		}
		return h.Repository.Crear(tx, &m)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"mantenimiento": m})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorEmpresa(h.DB, auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"mantenimientos": list})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	m, err := h.Repository.BuscarPorID(h.DB, uint(id), auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"mantenimiento": m})
}

// ListarPorInstalacion devuelve el historial de visitas de una instalación.
func (h *Handler) ListarPorInstalacion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	if err := tenancy.VerificarReferencia(h.DB, "instalaciones", uint(id),
		auth.EmpresaDeContexto(r.Context()), "instalación"); err != nil {
		utils.ResponderError(w, err)
		return
	}
	list, err := h.Repository.ListarPorInstalacion(h.DB, uint(id))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"mantenimientos": list})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req mantenimientoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}

	var m *Mantenimiento
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		m, errTx = h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if req.InstalacionID != 0 {
			m.InstalacionID = req.InstalacionID
		}
		if req.RealizadoPor != nil {
			m.RealizadoPor = req.RealizadoPor
		}
		if !req.Fecha.IsZero() {
			m.Fecha = req.Fecha
		}
		if req.Notas != "" {
			m.Notas = req.Notas
		}
		return h.Repository.Actualizar(tx, m)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"mantenimiento": m})
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		m, errTx := h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		return h.Repository.Eliminar(tx, m.ID)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Mantenimiento eliminado")
}
