package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	stripeclient "github.com/stripe/stripe-go/v78/client"
	httpSwagger "github.com/swaggo/http-swagger"

	// Nossos pacotes internos da aplicação!
	"github.com/willjrcristo/opportuneo-api/internal/auth"
	"github.com/willjrcristo/opportuneo-api/internal/config"
	"github.com/willjrcristo/opportuneo-api/internal/gateway/paystack"
	httphandler "github.com/willjrcristo/opportuneo-api/internal/handler/http"
	"github.com/willjrcristo/opportuneo-api/internal/repository"
	"github.com/willjrcristo/opportuneo-api/internal/service"
)

// @title           Opportuneo API
// @version         1.0
// @description     API do Opportuneo: assistente de busca de vagas com plano free/premium e upgrade via Paystack ou Stripe.
//
// @contact.name   Will Cristo
// @contact.url    https://linkedin.com/in/willjrcristo
// @contact.email  willjrcristo@gmail.com
//
// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html
//
// @host      localhost:8080
// @BasePath  /
func main() {
	// --- 1. LOGGER E CONFIGURAÇÃO ---
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	slog.Info("🚀 Iniciando a Opportuneo API...")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Erro ao carregar configuração", "error", err)
		os.Exit(1)
	}

	// --- 2. BANCO DE DADOS E MIGRAÇÕES ---
	db, err := initDB(cfg.DatabasePath)
	if err != nil {
		slog.Error("Erro ao inicializar o banco de dados", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("💾 Conexão com o banco de dados estabelecida com sucesso.")

	// --- 3. INJEÇÃO DE DEPENDÊNCIAS (WIRING) ---
	// DB -> Repositories -> Services -> Handlers. Clientes dos provedores
	// são construídos UMA vez aqui e injetados; nada de singletons globais.

	usuarioRepo := repository.NewUsuarioRepository(db)
	assinaturaRepo := repository.NewAssinaturaRepository(db)
	sessaoRepo := repository.NewSessaoRepository(db)
	slog.Info("Camada de repositório inicializada")

	stripeClient := &stripeclient.API{}
	stripeClient.Init(cfg.StripeSecretKey, nil)
	paystackClient := paystack.NewClient(cfg.PaystackBaseURL, cfg.PaystackSecretKey, nil)

	authService := auth.NewService(usuarioRepo, sessaoRepo)
	perfilService := service.NewPerfilService(usuarioRepo, assinaturaRepo)
	toolsService := service.NewToolsService(time.Now().UnixNano())

	reconciler := service.NewReconciler(usuarioRepo, assinaturaRepo)
	pagamentosService := service.NewPagamentosService(
		service.NewPaystackVerifier(cfg.PaystackSecretKey),
		service.NewStripeVerifier(cfg.StripeWebhookSecret),
		reconciler,
		stripeClient,
		paystackClient,
		cfg.AppURL,
		cfg.PrecoPremiumCentavos,
	)
	slog.Info("Camada de serviço inicializada")

	authHandler := httphandler.NewAuthHandler(authService)
	usuarioHandler := httphandler.NewUsuarioHandler(perfilService)
	toolsHandler := httphandler.NewToolsHandler(toolsService)
	pagamentosHandler := httphandler.NewPagamentosHandler(pagamentosService, cfg.AppURL)
	slog.Info("Camada de handler inicializada")

	// --- 4. ROTEADOR E ROTAS ---
	r := chi.NewRouter()

	// Middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(prometheusMiddleware)

	// Health check
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Opportuneo API está no ar! 🚀"))
	})

	// Métricas Prometheus
	r.Handle("/metrics", promhttp.Handler())

	// Documentação Swagger: http://localhost:8080/swagger/index.html
	r.Get("/swagger/*", httpSwagger.WrapHandler)
	slog.Info("📖 Documentação Swagger disponível em /swagger/index.html")

	// Rotas públicas de autenticação
	r.Mount("/auth", authHandler.Routes())

	// Pagamentos: webhooks/callback públicos (verificados por assinatura
	// criptográfica) + checkout autenticado, tudo sob /api/payments.
	authMiddleware := auth.Middleware(authService)
	r.Mount("/api/payments", pagamentosHandler.Routes(authMiddleware))

	// Área logada
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Mount("/api/user", usuarioHandler.Routes())
		r.Mount("/api/tools", toolsHandler.Routes())
	})
	slog.Info("🛰️  Rotas registradas")

	// --- 5. SERVIDOR HTTP ---
	slog.Info("✅ Servidor pronto para receber requisições", "porta", cfg.Porta)
	if err := http.ListenAndServe(":"+cfg.Porta, r); err != nil {
		slog.Error("Erro ao iniciar o servidor", "error", err)
		os.Exit(1)
	}
}

// initDB abre a conexão SQLite e aplica as migrações embutidas.
func initDB(filepath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", filepath)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := repository.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
