package router

import (
	"time"

	"github.com/santos-savio/sistema-controle-de-caixa/internal/config"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/handler"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/middleware"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/repository"
	"github.com/santos-savio/sistema-controle-de-caixa/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, loc *time.Location) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	transacaoRepo := repository.NewTransacaoRepository(db)
	metodoRepo := repository.NewMetodoPagamentoRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	configRepo := repository.NewConfigRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	vendaSvc := service.NewVendaService(transacaoRepo, metodoRepo, produtoRepo, clienteRepo, loc, cfg.NomeFantasia, cfg.PDFStoragePath)
	sangriaSvc := service.NewSangriaService(transacaoRepo, metodoRepo)
	relatorioSvc := service.NewRelatorioService(transacaoRepo, metodoRepo, loc)
	produtoSvc := service.NewProdutoService(produtoRepo)
	metodoSvc := service.NewMetodoPagamentoService(metodoRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	configSvc := service.NewConfigService(configRepo, rdb, time.Duration(cfg.AdminSessionTTLMin)*time.Minute)

	// ── Handlers ─────────────────────────────────────────────────────────────
	vendasH := handler.NewVendasHandler(vendaSvc)
	sangriasH := handler.NewSangriasHandler(sangriaSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	metodosH := handler.NewMetodosHandler(metodoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	configH := handler.NewConfigHandler(configSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	api := r.Group("/api")
	{
		// Till operations — the register itself is the trust boundary
		api.POST("/vendas", vendasH.RegistrarVenda)
		api.GET("/transacoes/:id", vendasH.ObterTransacao)
		api.GET("/transacoes/:id/recibo", vendasH.Recibo)
		api.POST("/sangrias", sangriasH.RegistrarSangria)

		// Reports
		api.GET("/relatorios/saldos", relatoriosH.Saldos)
		api.GET("/relatorios/resumo", relatoriosH.Resumo)
		api.GET("/relatorios/historico", relatoriosH.Historico)

		// Catalog reads
		api.GET("/produtos", produtosH.ListarProdutos)
		api.GET("/produtos/:id", produtosH.ObterProduto)
		api.GET("/metodos-pagamento", metodosH.ListarMetodos)

		// Clients
		api.GET("/clientes", clientesH.BuscarClientes)
		api.POST("/clientes", clientesH.CriarCliente)

		// PIN verification issues the admin session token
		api.POST("/pin/verify", middleware.PinRateLimiter(), configH.VerificarPin)

		// Admin-only: catalog writes and configuration
		admin := api.Group("", middleware.AdminAuth(rdb))
		{
			admin.POST("/produtos", produtosH.CriarProduto)
			admin.PUT("/produtos/:id", produtosH.AtualizarProduto)
			admin.DELETE("/produtos/:id", produtosH.RemoverProduto)

			admin.POST("/metodos-pagamento", metodosH.CriarMetodo)
			admin.PUT("/metodos-pagamento/:id", metodosH.AtualizarMetodo)
			admin.DELETE("/metodos-pagamento/:id", metodosH.RemoverMetodo)

			admin.GET("/config/:chave", configH.ObterConfig)
			admin.PUT("/config/:chave", configH.GravarConfig)
			admin.GET("/pin", configH.ObterPin)
			admin.POST("/pin", configH.AlterarPin)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
