package presupuesto

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/segurtec/api-instalaciones/internal/apperrors"
	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/tenancy"
	"github.com/segurtec/api-instalaciones/internal/utils"
)

type presupuestoRequest struct {
	EmpresaID        uint                    `json:"empresa_id"`
	ClienteID        *uint                   `json:"cliente_id"`
	ClienteNombre    string                  `json:"cliente_nombre"`
	ClienteTelefono  string                  `json:"cliente_telefono"`
	ClienteDireccion string                  `json:"cliente_direccion"`
	ClienteEmail     string                  `json:"cliente_email"`
	TipoSistema      string                  `json:"tipo_sistema"`
	Descripcion      string                  `json:"descripcion"`
	Total            *float64                `json:"total"`
	Estado           string                  `json:"estado"`
	Componentes      []componente.Componente `json:"componentes"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// contactoCliente copia los datos de contacto del cliente al presupuesto
// cuando el cuerpo no trae la copia ya armada.
func contactoCliente(db *gorm.DB, clienteID uint, p *Presupuesto) error {
	var c struct {
		Nombre    string
		Telefono  string
		Email     string
		Direccion string
	}
	if err := db.Table("clientes").
		Select("nombre, telefono, email, direccion").
		Where("id = ?", clienteID).
		Scan(&c).Error; err != nil {
		return err
	}
	if p.ClienteNombre == "" {
		p.ClienteNombre = c.Nombre
	}
	if p.ClienteTelefono == "" {
		p.ClienteTelefono = c.Telefono
	}
	if p.ClienteEmail == "" {
		p.ClienteEmail = c.Email
	}
	if p.ClienteDireccion == "" {
		p.ClienteDireccion = c.Direccion
	}
	return nil
}

func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req presupuestoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}

	creadoPor := auth.UsuarioDeContexto(r.Context())
	var p Presupuesto
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		empresaID, err := tenancy.ResolverEmpresa(tx, req.EmpresaID, auth.EmpresaDeContexto(r.Context()))
		if err != nil {
			return err
		}
		p = Presupuesto{
			EmpresaID:        empresaID,
			ClienteID:        req.ClienteID,
			ClienteNombre:    req.ClienteNombre,
			ClienteTelefono:  req.ClienteTelefono,
			ClienteDireccion: req.ClienteDireccion,
			ClienteEmail:     req.ClienteEmail,
			TipoSistema:      req.TipoSistema,
			Descripcion:      req.Descripcion,
			Estado:           req.Estado,
			CreadoPor:        &creadoPor,
			Componentes:      req.Componentes,
		}
		if req.Total != nil {
			p.Total = *req.Total
		}
		if req.ClienteID != nil {
			if err := contactoCliente(tx, *req.ClienteID, &p); err != nil {
				return err
			}
		}
		return h.Repository.Crear(tx, &p)
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, map[string]interface{}{"presupuesto": p})
}

func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repository.ListarPorEmpresa(h.DB, auth.EmpresaDeContexto(r.Context()))
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"presupuestos": list})
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
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"presupuesto": p})
}

// Actualizar aplica solo los campos presentes y con valor en el cuerpo.
// Si el cuerpo trae componentes, reemplazan a los existentes.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.ResponderError(w, apperrors.Validacion("ID inválido"))
		return
	}
	var req presupuestoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderError(w, apperrors.Validacion("JSON inválido"))
		return
	}

	var p *Presupuesto
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var errTx error
		p, errTx = h.Repository.BuscarPorID(tx, uint(id), auth.EmpresaDeContexto(r.Context()))
		if errTx != nil {
			return errTx
		}
		if req.ClienteID != nil {
			p.ClienteID = req.ClienteID
		}
		if req.ClienteNombre != "" {
			p.ClienteNombre = req.ClienteNombre
		}
		if req.ClienteTelefono != "" {
			p.ClienteTelefono = req.ClienteTelefono
		}
		if req.ClienteDireccion != "" {
			p.ClienteDireccion = req.ClienteDireccion
		}
		if req.ClienteEmail != "" {
			p.ClienteEmail = req.ClienteEmail
		}
		if req.TipoSistema != "" {
			p.TipoSistema = req.TipoSistema
		}
		if req.Descripcion != "" {
			p.Descripcion = req.Descripcion
		}
		if req.Total != nil {
			p.Total = *req.Total
		}
		if req.Estado != "" {
			p.Estado = req.Estado
		}
		if errTx = h.Repository.Actualizar(tx, p); errTx != nil {
			return errTx
		}
		if req.Componentes != nil {
			if errTx = h.Repository.ReemplazarComponentes(tx, p.ID, req.Componentes); errTx != nil {
				return errTx
			}
			p.Componentes = req.Componentes
		}
		return nil
	})
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]interface{}{"presupuesto": p})
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
	utils.ResponderMensaje(w, http.StatusOK, "Presupuesto eliminado")
}
