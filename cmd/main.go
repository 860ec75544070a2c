package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/segurtec/api-instalaciones/internal/auth"
	"github.com/segurtec/api-instalaciones/internal/cliente"
	"github.com/segurtec/api-instalaciones/internal/componente"
	"github.com/segurtec/api-instalaciones/internal/config"
	"github.com/segurtec/api-instalaciones/internal/empresa"
	"github.com/segurtec/api-instalaciones/internal/instalacion"
	"github.com/segurtec/api-instalaciones/internal/logger"
	"github.com/segurtec/api-instalaciones/internal/mantenimiento"
	"github.com/segurtec/api-instalaciones/internal/metrics"
	"github.com/segurtec/api-instalaciones/internal/pendiente"
	"github.com/segurtec/api-instalaciones/internal/presupuesto"
	"github.com/segurtec/api-instalaciones/internal/usuario"
	"github.com/segurtec/api-instalaciones/internal/utils"
	"github.com/segurtec/api-instalaciones/internal/utils/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error de configuración:", err)
	}
	if err := logger.Init(cfg); err != nil {
		log.Fatal("Error al iniciar el logger:", err)
	}
	zlog := logger.Get()

	database, err := db.Conectar(&cfg.DB)
	if err != nil {
		zlog.Fatal("Error al conectar a la base", zap.Error(err))
	}

	if err := database.AutoMigrate(
		&empresa.Empresa{},
		&usuario.Usuario{},
		&cliente.Cliente{},
		&instalacion.Instalacion{},
		&mantenimiento.Mantenimiento{},
		&pendiente.Pendiente{},
		&presupuesto.Presupuesto{},
		&componente.Componente{},
	); err != nil {
		zlog.Fatal("Error en AutoMigrate", zap.Error(err))
	}

	jwt := auth.NewJWT(&cfg.JWT)

	// Handlers
	usuarioHandler := usuario.NewHandler(database, jwt)
	empresaHandler := empresa.NewHandler(database)
	clienteHandler := cliente.NewHandler(database)
	instalacionHandler := instalacion.NewHandler(database)
	mantenimientoHandler := mantenimiento.NewHandler(database)
	pendienteHandler := pendiente.NewHandler(database)
	presupuestoHandler := presupuesto.NewHandler(database)

	// Router
	r := mux.NewRouter()
	r.Use(logger.Middleware)
	r.Use(metrics.Middleware)

	r.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/hello", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponderMensaje(w, http.StatusOK, "API OK")
	}).Methods("GET")
	api.HandleFunc("/auth/setup", usuarioHandler.Setup).Methods("POST")
	api.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")

	// Todo lo demás pide token, listados incluidos
	priv := api.NewRoute().Subrouter()
	priv.Use(jwt.Middleware)

	// Rutas de usuarios
	priv.HandleFunc("/usuarios", usuarioHandler.Crear).Methods("POST")
	priv.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	priv.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/usuarios/{id}", usuarioHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/usuarios/{id}", usuarioHandler.Eliminar).Methods("DELETE")
	priv.HandleFunc("/usuarios/{id}/password", usuarioHandler.CambiarPassword).Methods("PUT")

	// Rutas de empresas
	priv.HandleFunc("/empresas", empresaHandler.Crear).Methods("POST")
	priv.HandleFunc("/empresas", empresaHandler.Listar).Methods("GET")
	priv.HandleFunc("/empresas/{id}", empresaHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/empresas/{id}", empresaHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/empresas/{id}", empresaHandler.Eliminar).Methods("DELETE")

	// Rutas de clientes
	priv.HandleFunc("/clientes", clienteHandler.Crear).Methods("POST")
	priv.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	priv.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/clientes/{id}", clienteHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/clientes/{id}", clienteHandler.Eliminar).Methods("DELETE")

	// Rutas de instalaciones
	priv.HandleFunc("/instalaciones", instalacionHandler.Crear).Methods("POST")
	priv.HandleFunc("/instalaciones", instalacionHandler.Listar).Methods("GET")
	priv.HandleFunc("/instalaciones/{id}", instalacionHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/instalaciones/{id}", instalacionHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/instalaciones/{id}", instalacionHandler.Eliminar).Methods("DELETE")
	priv.HandleFunc("/instalaciones/{id}/mantenimientos", mantenimientoHandler.ListarPorInstalacion).Methods("GET")

	// Rutas de mantenimientos
	priv.HandleFunc("/mantenimientos", mantenimientoHandler.Crear).Methods("POST")
	priv.HandleFunc("/mantenimientos", mantenimientoHandler.Listar).Methods("GET")
	priv.HandleFunc("/mantenimientos/{id}", mantenimientoHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/mantenimientos/{id}", mantenimientoHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/mantenimientos/{id}", mantenimientoHandler.Eliminar).Methods("DELETE")

	// Rutas de pendientes
	priv.HandleFunc("/pendientes", pendienteHandler.Crear).Methods("POST")
	priv.HandleFunc("/pendientes", pendienteHandler.Listar).Methods("GET")
	priv.HandleFunc("/pendientes/{id}", pendienteHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/pendientes/{id}", pendienteHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/pendientes/{id}", pendienteHandler.Eliminar).Methods("DELETE")

	// Rutas de presupuestos
	priv.HandleFunc("/presupuestos", presupuestoHandler.Crear).Methods("POST")
	priv.HandleFunc("/presupuestos", presupuestoHandler.Listar).Methods("GET")
	priv.HandleFunc("/presupuestos/{id}", presupuestoHandler.BuscarPorID).Methods("GET")
	priv.HandleFunc("/presupuestos/{id}", presupuestoHandler.Actualizar).Methods("PUT")
	priv.HandleFunc("/presupuestos/{id}", presupuestoHandler.Eliminar).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler(r)

	zlog.Info("Servidor iniciado", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		zlog.Fatal("Servidor detenido", zap.Error(err))
	}
}
