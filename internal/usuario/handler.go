package usuario

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

type usuarioRequest struct {
	EmpresaID uint   `json:"empresa_id"`
	Nombre    string `json:"nombre"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Rol       string `json:"rol"`
	Activo    *bool  `json:"activo"`
}

type cambiarPasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type Handler struct {
	DB         *gorm.DB
	JWT        *auth.JWT
	Repository Repository
}

func NewHandler(db *gorm.DB, jwt *auth.JWT) *Handler {
	return &Handler{DB: db, JWT: jwt, Repository: NewRepository()}
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req usuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.Nombre == "" || req.Email == "" || req.Password == "" {
		utils.ResponderError(w, apperrors.Validacion("nombre, email y password son obligatorios"))
		return
	}
	if req.Rol == "" {
		req.Rol = RolInstalador
	}
	if !RolValido(req.Rol) {
		utils.ResponderError(w, apperrors.Validacion("rol debe ser ADMIN, SUPERVISOR o INSTALADOR"))
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}

	var u Usuario
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		empresaID, errTx := tenancy.ResolverEmpresa(tx, req.EmpresaID, auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		u = Usuario{
			EmpresaID: empresaID,
			Nombre:    req.Nombre,
			Email:     req.Email,
			Password:  hash,
			Rol:       req.Rol,
			Activo:    true,
		}
		if req.Username != "" {
			u.Username = &req.Username
		}
		return h.Repository.Crear(tx, &u)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"usuario": u})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorEmpresa(h.DB, auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"usuarios": list})
}

func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	u, err := h.Repository.BuscarPorID(h.DB, uint(id), auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"usuario": u})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo. La
// contraseña se cambia por su endpoint propio, nunca desde acá.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req usuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.Rol != "" && !RolValido(req.Rol) {
		utils.ResponderError(w, apperrors.Validacion("rol debe ser ADMIN, SUPERVISOR o INSTALADOR"))
		return
	}

	var u *Usuario
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		u, errTx = h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if req.Nombre != "" {
			u.Nombre = req.Nombre
		}
		if req.Email != "" {
			u.Email = req.Email
		}
		if req.Username != "" {
			u.Username = &req.Username
		}
		if req.Rol != "" {
			u.Rol = req.Rol
		}
		if req.Activo != nil {
			u.Activo = *req.Activo
		}
		return h.Repository.Actualizar(tx, u)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"usuario": u})
}

func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		u, errTx := h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		return h.Repository.Eliminar(tx, u.ID)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Usuario eliminado")
}

// CambiarPassword verifica la contraseña vigente antes de reemplazarla.
func (h *Handler) CambiarPassword(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req cambiarPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		utils.ResponderError(w, apperrors.Validacion("current_password y new_password son obligatorios"))
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		u, errTx := h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if !utils.VerificarPassword(u.Password, req.CurrentPassword) {
			return apperrors.NoAutorizado("contraseña actual incorrecta")
		}
		hash, errTx := utils.HashPassword(req.NewPassword)
		if errTx != nil {
			return errTx
		}
		u.Password = hash
		return h.Repository.Actualizar(tx, u)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderMensaje(w, http.StatusOK, "Contraseña actualizada correctamente")
}
