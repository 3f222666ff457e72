package service

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v78"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// O interpretador traduz o payload específico de cada provedor em uma
// domain.Intent normalizada. Ele assume que a assinatura JÁ FOI
// verificada: aqui só existe parsing e mapeamento.
//
// Regra geral: tipo de evento desconhecido vira IntentIgnore (nunca
// erro); metadata obrigatório ausente vira erro (o handler responde 400
// em vez de descartar em silêncio).

// eventoPaystack é o subconjunto do payload da Paystack que nos interessa.
type eventoPaystack struct {
	Event string `json:"event"`
	Data  struct {
		Reference string `json:"reference"`
		Metadata  struct {
			UserID string `json:"user_id"`
		} `json:"metadata"`
	} `json:"data"`
}

// InterpretarEventoPaystack mapeia charge.success para GrantPremium,
// extraindo o user_id do metadata gravado na inicialização da transação.
func InterpretarEventoPaystack(payload []byte) (domain.Intent, error) {
	var evento eventoPaystack
	if err := json.Unmarshal(payload, &evento); err != nil {
		return domain.Ignorar, fmt.Errorf("%w: %v", ErrPayloadInvalido, err)
	}

	if evento.Event != "charge.success" {
		return domain.Ignorar, nil
	}

	if evento.Data.Metadata.UserID == "" {
		return domain.Ignorar, ErrMetadataSemUsuario
	}

	return domain.Intent{
		Kind:        domain.IntentGrantPremium,
		UsuarioID:   evento.Data.Metadata.UserID,
		Provider:    domain.ProviderPaystack,
		ProviderRef: evento.Data.Reference,
	}, nil
}

// InterpretarEventoStripe mapeia os dois eventos que tratamos:
//   - checkout.session.completed  -> GrantPremium
//   - customer.subscription.deleted -> RevokeBySubscriptionID
func InterpretarEventoStripe(evento stripe.Event) (domain.Intent, error) {
	switch evento.Type {
	case "checkout.session.completed":
		var sessao stripe.CheckoutSession
		if err := json.Unmarshal(evento.Data.Raw, &sessao); err != nil {
			return domain.Ignorar, fmt.Errorf("%w: %v", ErrPayloadInvalido, err)
		}

		usuarioID := sessao.Metadata["user_id"]
		if usuarioID == "" {
			return domain.Ignorar, ErrMetadataSemUsuario
		}

		var ref string
		if sessao.Subscription != nil {
			ref = sessao.Subscription.ID
		}

		return domain.Intent{
			Kind:        domain.IntentGrantPremium,
			UsuarioID:   usuarioID,
			Provider:    domain.ProviderStripe,
			ProviderRef: ref,
		}, nil

	case "customer.subscription.deleted":
		var assinatura stripe.Subscription
		if err := json.Unmarshal(evento.Data.Raw, &assinatura); err != nil {
			return domain.Ignorar, fmt.Errorf("%w: %v", ErrPayloadInvalido, err)
		}
		return domain.Intent{
			Kind:                   domain.IntentRevokeBySubscriptionID,
			ProviderSubscriptionID: assinatura.ID,
		}, nil

	default:
		return domain.Ignorar, nil
	}
}
