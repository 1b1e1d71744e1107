package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/Bjohan23/SIGES-sub000/internal/core/auth"
	"github.com/Bjohan23/SIGES-sub000/internal/core/config"
	"github.com/Bjohan23/SIGES-sub000/internal/domain"
	"github.com/Bjohan23/SIGES-sub000/internal/service"
	"github.com/Bjohan23/SIGES-sub000/internal/transport/http/handler"
	mdw "github.com/Bjohan23/SIGES-sub000/internal/transport/http/middleware"
)

type Deps struct {
	Log      *zap.Logger
	Cfg      *config.Config
	DB       *gorm.DB
	JWTer    *auth.JWTer
	Permisos *service.PermissionService

	Auth        *handler.AuthHandler
	Estudiantes *handler.EstudianteHandler
	Fichas      *handler.FichaHandler
	Entrevistas *handler.EntrevistaHandler
	Usuarios    *handler.UsuarioHandler
}

func New(d Deps) *gin.Engine {
	r := gin.New()

	rl := d.Cfg.RateLimit
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(rl.RPS), rl.Burst),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(d.Log, true),
		mdw.Metrics(),
		mdw.AccessLog(d.Log),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Public auth routes get a per-IP bucket on top of the global limiter.
	authPub := api.Group("")
	authPub.Use(mdw.RateLimitPerIP(rate.Limit(rl.LoginRPS), rl.LoginBurst))

	priv := api.Group("")
	priv.Use(mdw.AuthJWT(d.JWTer))

	// Permissions are resolved against the database on every request, so
	// revoking a modulo takes effect immediately rather than at token expiry.
	gate := &mdw.Gate{Checker: d.Permisos}

	d.Auth.Mount(authPub, priv)
	d.Estudiantes.Mount(priv, gate)
	d.Fichas.Mount(priv, gate)
	d.Entrevistas.Mount(priv, gate)
	d.Usuarios.Mount(priv, gate)

	mountInformes(priv, d.DB, gate)

	return r
}

// mountInformes wires the four narrative report types through the generic
// CRUD mount.
func mountInformes(g *gin.RouterGroup, db *gorm.DB, gate *mdw.Gate) {
	handler.MountCrud(g, handler.CrudMount[domain.InformeVisita]{
		Svc:       service.NewInformeVisitaService(db),
		Gate:      gate,
		Path:      "/informes-visita",
		ReadPerm:  domain.PermInformesLectura,
		WritePerm: domain.PermInformesEscritura,
		ListScope: handler.ByEstudianteScope,
	})
	handler.MountCrud(g, handler.CrudMount[domain.RegistroEntrevista]{
		Svc:       service.NewRegistroEntrevistaService(db),
		Gate:      gate,
		Path:      "/registros-entrevista",
		ReadPerm:  domain.PermInformesLectura,
		WritePerm: domain.PermInformesEscritura,
		ListScope: handler.ByEstudianteScope,
	})
	handler.MountCrud(g, handler.CrudMount[domain.CronicaCaso]{
		Svc:       service.NewCronicaCasoService(db),
		Gate:      gate,
		Path:      "/cronicas",
		ReadPerm:  domain.PermInformesLectura,
		WritePerm: domain.PermInformesEscritura,
		ListScope: handler.ByEstudianteScope,
	})
	handler.MountCrud(g, handler.CrudMount[domain.InformeSituacion]{
		Svc:       service.NewInformeSituacionService(db),
		Gate:      gate,
		Path:      "/informes-situacion",
		ReadPerm:  domain.PermInformesLectura,
		WritePerm: domain.PermInformesEscritura,
		ListScope: handler.ByEstudianteScope,
	})
}
