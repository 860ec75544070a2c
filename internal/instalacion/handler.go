package instalacion

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

type instalacionRequest struct {
	EmpresaID            uint         `json:"empresa_id"`
	ClienteID            uint         `json:"cliente_id"`
	InstaladorID         *uint        `json:"instalador_id"`
	TipoSistema          string       `json:"tipo_sistema"`
	FechaInstalacion     tipos.Fecha  `json:"fecha_instalacion"`
	FrecuenciaMeses      int          `json:"frecuencia_meses"`
	ProximoMantenimiento *tipos.Fecha `json:"proximo_mantenimiento"`
	Activa               *bool        `json:"activa"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req instalacionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.ClienteID == 0 || req.FechaInstalacion.IsZero() {
		utils.ResponderError(w, apperrors.Validacion("cliente_id y fecha_instalacion son obligatorios"))
		return
	}
	if !tipoSistemaValido(req.TipoSistema) {
		utils.ResponderError(w, apperrors.Validacion("tipo_sistema debe ser CAMARAS, ALARMAS o AMBOS"))
		return
	}

	var i Instalacion
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		empresaID, err := tenancy.ResolverEmpresa(tx, req.EmpresaID, auth.EmpresaDeContexto(r.Context()))
		if err != nil {
			return err
		}
		i = Instalacion{
			EmpresaID:            empresaID,
			ClienteID:            req.ClienteID,
			InstaladorID:         req.InstaladorID,
			TipoSistema:          req.TipoSistema,
			FechaInstalacion:     req.FechaInstalacion,
			FrecuenciaMeses:      req.FrecuenciaMeses,
			ProximoMantenimiento: req.ProximoMantenimiento,
			Activa:               true,
		}
		return h.Repository.Crear(tx, &i)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"instalacion": i})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorEmpresa(h.DB, auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"instalaciones": list})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	i, err := h.Repository.BuscarPorID(h.DB, uint(id), auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"instalacion": i})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req instalacionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if !tipoSistemaValido(req.TipoSistema) {
		utils.ResponderError(w, apperrors.Validacion("tipo_sistema debe ser CAMARAS, ALARMAS o AMBOS"))
		return
	}

	var i *Instalacion
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		i, errTx = h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if req.ClienteID != 0 {
			i.ClienteID = req.ClienteID
		}
		if req.InstaladorID != nil {
			i.InstaladorID = req.InstaladorID
		}
		if req.TipoSistema != "" {
			i.TipoSistema = req.TipoSistema
		}
		if !req.FechaInstalacion.IsZero() {
			i.FechaInstalacion = req.FechaInstalacion
		}
		if req.FrecuenciaMeses != 0 {
			i.FrecuenciaMeses = req.FrecuenciaMeses
		}
		if req.ProximoMantenimiento != nil {
			i.ProximoMantenimiento = req.ProximoMantenimiento
		}
		if req.Activa != nil {
			i.Activa = *req.Activa
		}
		return h.Repository.Actualizar(tx, i)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"instalacion": i})
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		i, errTx := h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		return h.Repository.Eliminar(tx, i.ID)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Instalación eliminada")
}
