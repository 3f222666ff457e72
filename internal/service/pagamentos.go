package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/gateway/paystack"
)

// SessaoCheckout é o resultado de um checkout criado na Stripe.
type SessaoCheckout struct {
	SessionID string
	URL       string
}

// TransacaoPaystack é o resultado de uma transação aberta na Paystack.
type TransacaoPaystack struct {
	AuthorizationURL string
	Reference        string
}

// PagamentosService orquestra o fluxo completo de pagamentos:
// inicia checkouts nos dois gateways e processa os webhooks
// (verificação -> interpretação -> reconciliação).
//
// Todas as dependências são injetadas no construtor; nada de clientes
// globais montados por requisição.
type PagamentosService struct {
	paystackVerifier *PaystackVerifier
	stripeVerifier   *StripeVerifier
	reconciler       *Reconciler

	stripe   *client.API
	paystack *paystack.Client

	appURL        string
	precoCentavos int64
}

// NewPagamentosService monta o serviço de pagamentos.
func NewPagamentosService(
	paystackVerifier *PaystackVerifier,
	stripeVerifier *StripeVerifier,
	reconciler *Reconciler,
	stripeClient *client.API,
	paystackClient *paystack.Client,
	appURL string,
	precoCentavos int64,
) *PagamentosService {
	return &PagamentosService{
		paystackVerifier: paystackVerifier,
		stripeVerifier:   stripeVerifier,
		reconciler:       reconciler,
		stripe:           stripeClient,
		paystack:         paystackClient,
		appURL:           appURL,
		precoCentavos:    precoCentavos,
	}
}

// ProcessarWebhookPaystack trata uma entrega de webhook da Paystack.
// A verificação da assinatura acontece ANTES de qualquer parsing ou
// escrita; falha de verificação nunca toca o banco.
func (s *PagamentosService) ProcessarWebhookPaystack(ctx context.Context, payload []byte, assinatura string) error {
	if !s.paystackVerifier.Verificar(payload, assinatura) {
		webhookEventosTotal.WithLabelValues("paystack", "assinatura_invalida").Inc()
		return ErrAssinaturaWebhookInvalida
	}

	intent, err := InterpretarEventoPaystack(payload)
	if err != nil {
		webhookEventosTotal.WithLabelValues("paystack", "evento_invalido").Inc()
		return err
	}
	if intent.Kind == domain.IntentIgnore {
		webhookEventosTotal.WithLabelValues("paystack", "ignorado").Inc()
		return nil
	}

	if err := s.reconciler.Aplicar(ctx, intent); err != nil {
		webhookEventosTotal.WithLabelValues("paystack", "erro").Inc()
		return err
	}
	webhookEventosTotal.WithLabelValues("paystack", "sucesso").Inc()
	return nil
}

// ProcessarWebhookStripe trata uma entrega de webhook da Stripe.
func (s *PagamentosService) ProcessarWebhookStripe(ctx context.Context, payload []byte, assinatura string) error {
	evento, err := s.stripeVerifier.Verificar(payload, assinatura)
	if err != nil {
		slog.Error("falha na verificação da assinatura do webhook da stripe", "error", err)
		webhookEventosTotal.WithLabelValues("stripe", "assinatura_invalida").Inc()
		return ErrAssinaturaWebhookInvalida
	}

	intent, err := InterpretarEventoStripe(evento)
	if err != nil {
		webhookEventosTotal.WithLabelValues("stripe", "evento_invalido").Inc()
		return err
	}
	if intent.Kind == domain.IntentIgnore {
		slog.Info("webhook da stripe recebido, mas não tratado", "event_type", evento.Type)
		webhookEventosTotal.WithLabelValues("stripe", "ignorado").Inc()
		return nil
	}

	if err := s.reconciler.Aplicar(ctx, intent); err != nil {
		webhookEventosTotal.WithLabelValues("stripe", "erro").Inc()
		return err
	}
	webhookEventosTotal.WithLabelValues("stripe", "sucesso").Inc()
	return nil
}

// CriarCheckoutStripe abre uma sessão de checkout hospedada na Stripe
// para a assinatura premium ($/mês). O user_id vai no metadata da
// sessão e volta pra gente no webhook checkout.session.completed.
func (s *PagamentosService) CriarCheckoutStripe(ctx context.Context, usuarioID, email string) (*SessaoCheckout, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL:         stripe.String(s.appURL + "/dashboard?upgrade=success"),
		CancelURL:          stripe.String(s.appURL + "/dashboard/upgrade?cancelled=true"),
		CustomerEmail:      stripe.String(email),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("usd"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Opportuneo Premium"),
						Description: stripe.String("Assistente de carreira com IA - Plano Premium"),
					},
					UnitAmount: stripe.Int64(s.precoCentavos),
					Recurring: &stripe.CheckoutSessionLineItemPriceDataRecurringParams{
						Interval: stripe.String("month"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("user_id", usuarioID)
	params.AddMetadata("plan", "premium")

	sessao, err := s.stripe.CheckoutSessions.New(params)
	if err != nil {
		slog.Error("falha ao criar a sessão de checkout na stripe", "error", err)
		return nil, err
	}
	return &SessaoCheckout{SessionID: sessao.ID, URL: sessao.URL}, nil
}

// InicializarPaystack abre uma transação na Paystack (em NGN) e devolve
// a URL de pagamento hospedada. O user_id vai no metadata e volta no
// webhook charge.success e na verificação do callback.
func (s *PagamentosService) InicializarPaystack(ctx context.Context, usuarioID, email string, valor int64) (*TransacaoPaystack, error) {
	resp, err := s.paystack.Initialize(ctx, paystack.InitializeRequest{
		Email:       email,
		Amount:      valor,
		Currency:    "NGN",
		CallbackURL: s.appURL + "/api/payments/paystack/callback",
		Metadata: map[string]string{
			"user_id": usuarioID,
			"plan":    "premium",
		},
	})
	if err != nil {
		slog.Error("falha ao inicializar transação na paystack", "error", err)
		return nil, err
	}
	return &TransacaoPaystack{
		AuthorizationURL: resp.AuthorizationURL,
		Reference:        resp.Reference,
	}, nil
}

// ConfirmarCallbackPaystack faz a verificação síncrona (server-to-server)
// de uma transação quando o navegador volta do checkout da Paystack.
// Em caso de sucesso, aplica a concessão do premium antes do redirect.
func (s *PagamentosService) ConfirmarCallbackPaystack(ctx context.Context, reference string) (bool, error) {
	verificacao, err := s.paystack.Verify(ctx, reference)
	if err != nil {
		return false, fmt.Errorf("erro na verificação da transação %s: %w", reference, err)
	}
	if verificacao.Status != "success" {
		return false, nil
	}

	intent := domain.Intent{
		Kind:        domain.IntentGrantPremium,
		UsuarioID:   verificacao.UsuarioID,
		Provider:    domain.ProviderPaystack,
		ProviderRef: reference,
	}
	if err := s.reconciler.Aplicar(ctx, intent); err != nil {
		// O webhook charge.success também concede; aqui só logamos.
		slog.Error("erro ao reconciliar no callback da paystack", "reference", reference, "error", err)
	}
	return true, nil
}
