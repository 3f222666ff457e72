package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config reúne toda a configuração da API, carregada das variáveis de
// ambiente (com fallback para um arquivo .env no diretório atual).
type Config struct {
	Porta        string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./opportuneo.db"`

	// URL pública da aplicação, usada nos redirects de checkout/callback.
	AppURL string `env:"APP_URL" envDefault:"http://localhost:3000"`

	// Stripe (gateway de cartão).
	StripeSecretKey     string `env:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET"`

	// Paystack (gateway regional).
	PaystackSecretKey string `env:"PAYSTACK_SECRET_KEY"`
	PaystackBaseURL   string `env:"PAYSTACK_BASE_URL" envDefault:"https://api.paystack.co"`

	// Preço do plano premium na Stripe, em centavos de dólar.
	PrecoPremiumCentavos int64 `env:"PREMIUM_PRICE_CENTS" envDefault:"200"`
}

// Load carrega o .env (se existir) e faz o parse das variáveis de
// ambiente para a struct Config.
func Load() (*Config, error) {
	// Ausência do arquivo .env não é erro: em produção as variáveis
	// vêm direto do ambiente.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("erro ao carregar configuração: %w", err)
	}
	return &cfg, nil
}
