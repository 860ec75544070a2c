package usuario

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/empresa"
	"github.com/segurtec/api-instalaciones/internal/utils"
)

type setupRequest struct {
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	NombreEmpresa string `json:"nombre_empresa"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Setup es el alta inicial del sistema: crea la primera empresa y su
// usuario ADMIN. Solo funciona mientras no exista ningún usuario.
func (h *Handler) Setup(w http.ResponseWriter, r *http.Request) {
	var req setupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.ResponderError(w, apperrors.Validacion("email y password son obligatorios"))
		return
	}
	if req.Nombre == "" {
		req.Nombre = "Admin"
	}
	if req.NombreEmpresa == "" {
		req.NombreEmpresa = "Principal"
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		n, errTx := h.Repository.Contar(tx)
		if errTx != nil {
			return errTx
		}
		if n > 0 {
			return apperrors.Prohibido("el setup ya fue completado")
		}
		e := empresa.Empresa{Nombre: req.NombreEmpresa, Activa: true}
		if errTx = tx.Create(&e).Error; errTx != nil {
			return errTx
		}
		u := Usuario{
			EmpresaID: e.ID,
			Nombre:    req.Nombre,
			Email:     req.Email,
			Password:  hash,
			Rol:       RolAdmin,
			Activo:    true,
		}
		return tx.Create(&u).Error
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusCreated, "Setup completado")
}

// Login acepta email o username en el campo email, igual que siempre lo
// hizo el frontend.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.ResponderError(w, apperrors.Validacion("datos incompletos"))
		return
	}

	u, err := h.Repository.BuscarPorEmailOUsername(h.DB, req.Email)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if !utils.VerificarPassword(u.Password, req.Password) {
		utils.ResponderError(w, apperrors.NoAutorizado("credenciales inválidas"))
		return
	}
	if !u.Activo {
		utils.ResponderError(w, apperrors.Prohibido("usuario inactivo"))
		return
	}

	token, err := h.JWT.GenerarToken(u.ID, u.EmpresaID, u.Rol)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"usuario": u,
	})
}
