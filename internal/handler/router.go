package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"medverify/internal/handler/api"
	"medverify/internal/handler/middleware"
	"medverify/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	medicineHandler *api.MedicineHandler,
	verifyHandler *api.VerifyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, medicineHandler, verifyHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	medicineHandler *api.MedicineHandler,
	verifyHandler *api.VerifyHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/token", Handler: authHandler.IssueToken},
			})
		}

		verify := apiGroup.Group("/verify")
		{
			addRoutes(verify, []route{
				{Method: http.MethodPost, Path: "", Handler: verifyHandler.Verify},
				{Method: http.MethodPost, Path: "/qr", Handler: verifyHandler.VerifyQR},
				{Method: http.MethodGet, Path: "/logs", Handler: verifyHandler.Logs},
			})
		}

		medicines := apiGroup.Group("/medicines")
		{
			addRoutes(medicines, []route{
				{Method: http.MethodGet, Path: "", Handler: medicineHandler.ListMedicines},
				{Method: http.MethodGet, Path: "/:productId", Handler: medicineHandler.GetMedicine},
			})

			manufacturerOnly := medicines.Group("")
			manufacturerOnly.Use(authMiddleware.RequireManufacturer())
			addRoutes(manufacturerOnly, []route{
				{Method: http.MethodPost, Path: "", Handler: medicineHandler.Register},
				{Method: http.MethodPost, Path: "/:productId/qr", Handler: medicineHandler.IssueQR},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
