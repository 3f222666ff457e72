package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/opportuneo-api/internal/auth"
	"github.com/willjrcristo/opportuneo-api/internal/service"
)

// PagamentosService é o contrato que o handler de pagamentos espera.
// Depender de uma interface (e não do serviço concreto) facilita os testes.
type PagamentosService interface {
	ProcessarWebhookPaystack(ctx context.Context, payload []byte, assinatura string) error
	ProcessarWebhookStripe(ctx context.Context, payload []byte, assinatura string) error
	CriarCheckoutStripe(ctx context.Context, usuarioID, email string) (*service.SessaoCheckout, error)
	InicializarPaystack(ctx context.Context, usuarioID, email string, valor int64) (*service.TransacaoPaystack, error)
	ConfirmarCallbackPaystack(ctx context.Context, reference string) (bool, error)
}

// PagamentosHandler expõe os endpoints de checkout, callback e webhooks.
type PagamentosHandler struct {
	service PagamentosService
	appURL  string
}

// NewPagamentosHandler cria o handler de pagamentos.
func NewPagamentosHandler(s PagamentosService, appURL string) *PagamentosHandler {
	return &PagamentosHandler{service: s, appURL: appURL}
}

// Routes define todas as rotas de /api/payments.
//
// Webhooks e callback ficam FORA do middleware de autenticação: a prova
// de origem deles é a assinatura criptográfica do provedor, não a
// sessão. Os endpoints de checkout exigem sessão autenticada.
func (h *PagamentosHandler) Routes(authMiddleware func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/paystack/webhook", h.WebhookPaystack)
	r.Post("/stripe/webhook", h.WebhookStripe)
	r.Get("/paystack/callback", h.CallbackPaystack)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/stripe/create-checkout", h.CreateCheckoutStripe)
		r.Post("/paystack/initialize", h.InitializePaystack)
	})

	return r
}

// Limite do corpo dos webhooks (a assinatura é sobre o corpo bruto).
const maxWebhookBodyBytes = int64(65536)

// lerCorpoWebhook lê o corpo BRUTO da requisição. O HMAC/assinatura é
// calculado sobre os bytes originais, nunca sobre o JSON re-serializado.
func lerCorpoWebhook(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes)
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Erro ao ler corpo da requisição")
		return nil, false
	}
	return payload, true
}

// responderWebhook mapeia o erro do serviço no contrato HTTP dos
// provedores: 400 para falha de assinatura/interpretação (não reentrega),
// 500 para falha de escrita (convida a reentrega), 200 {received:true}
// para sucesso ou evento ignorado.
func responderWebhook(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		respondWithJSON(w, http.StatusOK, map[string]bool{"received": true})
	case errors.Is(err, service.ErrAssinaturaWebhookInvalida):
		respondWithError(w, http.StatusBadRequest, "Invalid signature")
	case errors.Is(err, service.ErrMetadataSemUsuario):
		respondWithError(w, http.StatusBadRequest, "No user ID in metadata")
	case errors.Is(err, service.ErrPayloadInvalido):
		respondWithError(w, http.StatusBadRequest, "Invalid payload")
	default:
		respondWithError(w, http.StatusInternalServerError, "Webhook handler failed")
	}
}

// @Summary      Webhook da Paystack
// @Description  Recebe eventos assinados (HMAC-SHA512) da Paystack e aplica a reconciliação de plano
// @Tags         pagamentos
// @Accept       json
// @Produce      json
// @Param        x-paystack-signature  header  string  true  "Assinatura HMAC-SHA512 do corpo"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/payments/paystack/webhook [post]
func (h *PagamentosHandler) WebhookPaystack(w http.ResponseWriter, r *http.Request) {
	payload, ok := lerCorpoWebhook(w, r)
	if !ok {
		return
	}
	assinatura := r.Header.Get("x-paystack-signature")
	responderWebhook(w, h.service.ProcessarWebhookPaystack(r.Context(), payload, assinatura))
}

// @Summary      Webhook da Stripe
// @Description  Recebe eventos assinados da Stripe e aplica a reconciliação de plano
// @Tags         pagamentos
// @Accept       json
// @Produce      json
// @Param        Stripe-Signature  header  string  true  "Assinatura do evento"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/payments/stripe/webhook [post]
func (h *PagamentosHandler) WebhookStripe(w http.ResponseWriter, r *http.Request) {
	payload, ok := lerCorpoWebhook(w, r)
	if !ok {
		return
	}
	assinatura := r.Header.Get("Stripe-Signature")
	responderWebhook(w, h.service.ProcessarWebhookStripe(r.Context(), payload, assinatura))
}

type createCheckoutRequest struct {
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// @Summary      Cria uma sessão de checkout na Stripe
// @Description  Gera a URL de pagamento hospedada para o upgrade premium via cartão
// @Tags         pagamentos
// @Accept       json
// @Produce      json
// @Param        body  body      createCheckoutRequest  true  "E-mail e id do usuário"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/payments/stripe/create-checkout [post]
func (h *PagamentosHandler) CreateCheckoutStripe(w http.ResponseWriter, r *http.Request) {
	var req createCheckoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, checkoutErro("Corpo da requisição inválido"))
		return
	}

	// O usuário autenticado PRECISA ser o dono do userId do corpo: sem
	// isso, qualquer sessão iniciaria cobranças atribuídas a terceiros.
	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil || usuario.ID != req.UserID {
		respondWithJSON(w, http.StatusUnauthorized, checkoutErro("Unauthorized"))
		return
	}

	sessao, err := h.service.CriarCheckoutStripe(r.Context(), usuario.ID, req.Email)
	if err != nil {
		respondWithJSON(w, http.StatusInternalServerError, checkoutErro("Failed to create checkout session"))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"sessionId": sessao.SessionID,
		"url":       sessao.URL,
	})
}

type initializePaystackRequest struct {
	Email  string `json:"email"`
	Amount int64  `json:"amount"`
	UserID string `json:"userId"`
}

// @Summary      Inicializa uma transação na Paystack
// @Description  Abre a transação em NGN e devolve a URL de pagamento hospedada
// @Tags         pagamentos
// @Accept       json
// @Produce      json
// @Param        body  body      initializePaystackRequest  true  "E-mail, valor e id do usuário"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]interface{}
// @Router       /api/payments/paystack/initialize [post]
func (h *PagamentosHandler) InitializePaystack(w http.ResponseWriter, r *http.Request) {
	var req initializePaystackRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithJSON(w, http.StatusBadRequest, checkoutErro("Corpo da requisição inválido"))
		return
	}

	usuario := auth.UsuarioFromContext(r.Context())
	if usuario == nil || usuario.ID != req.UserID {
		respondWithJSON(w, http.StatusUnauthorized, checkoutErro("Unauthorized"))
		return
	}

	transacao, err := h.service.InicializarPaystack(r.Context(), usuario.ID, req.Email, req.Amount)
	if err != nil {
		respondWithJSON(w, http.StatusInternalServerError, checkoutErro("Payment initialization failed"))
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"success":           true,
		"authorization_url": transacao.AuthorizationURL,
		"reference":         transacao.Reference,
	})
}

// @Summary      Callback de redirect da Paystack
// @Description  Verifica a transação (server-to-server) e redireciona o navegador para o dashboard
// @Tags         pagamentos
// @Param        reference  query  string  true  "Referência da transação"
// @Success      303
// @Router       /api/payments/paystack/callback [get]
func (h *PagamentosHandler) CallbackPaystack(w http.ResponseWriter, r *http.Request) {
	reference := r.URL.Query().Get("reference")
	if reference == "" {
		http.Redirect(w, r, h.appURL+"/dashboard/upgrade?error=invalid_reference", http.StatusSeeOther)
		return
	}

	sucesso, err := h.service.ConfirmarCallbackPaystack(r.Context(), reference)
	if err != nil {
		http.Redirect(w, r, h.appURL+"/dashboard/upgrade?error=verification_failed", http.StatusSeeOther)
		return
	}
	if !sucesso {
		http.Redirect(w, r, h.appURL+"/dashboard/upgrade?error=payment_failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.appURL+"/dashboard?upgrade=success", http.StatusSeeOther)
}

func checkoutErro(mensagem string) map[string]any {
	return map[string]any{"success": false, "message": mensagem}
}
