package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

// PaystackVerifier valida a origem dos webhooks da Paystack.
// A Paystack assina o CORPO BRUTO da requisição com HMAC-SHA512 (hex)
// usando a secret key da conta, e envia o resultado no header
// x-paystack-signature.
type PaystackVerifier struct {
	secretKey string
}

// NewPaystackVerifier cria o verificador com a secret key compartilhada.
func NewPaystackVerifier(secretKey string) *PaystackVerifier {
	return &PaystackVerifier{secretKey: secretKey}
}

// Verificar recomputa o HMAC sobre o payload bruto e compara com a
// assinatura recebida. Header ausente ou divergente = inválido.
// Função pura: nenhum efeito colateral.
func (v *PaystackVerifier) Verificar(payload []byte, assinatura string) bool {
	if assinatura == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(v.secretKey))
	mac.Write(payload)
	esperada := hex.EncodeToString(mac.Sum(nil))
	// Comparação em tempo constante para não vazar a assinatura esperada.
	return hmac.Equal([]byte(esperada), []byte(assinatura))
}

// StripeVerifier valida webhooks da Stripe usando a primitiva de
// verificação de eventos assinados do próprio SDK, com o webhook secret
// (distinto da API key).
type StripeVerifier struct {
	webhookSecret string
}

// NewStripeVerifier cria o verificador com o webhook secret do endpoint.
func NewStripeVerifier(webhookSecret string) *StripeVerifier {
	return &StripeVerifier{webhookSecret: webhookSecret}
}

// Verificar valida a assinatura e devolve o evento já decodificado.
// Qualquer falha de verificação vem como erro. Ignoramos o mismatch de
// api_version: a versão pinada do SDK quase nunca bate com a da conta.
func (v *StripeVerifier) Verificar(payload []byte, assinatura string) (stripe.Event, error) {
	return webhook.ConstructEventWithOptions(payload, assinatura, v.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
}
