package domain

import "time"

// Provider identifica o gateway de pagamento que originou a assinatura.
type Provider string

const (
	ProviderPaystack Provider = "paystack"
	ProviderStripe   Provider = "stripe"
)

// StatusAssinatura é o estado observável de uma assinatura.
// O ciclo de vida é: active -> cancelled. Não existe transição de volta:
// uma assinatura renovada vira uma NOVA linha na tabela.
type StatusAssinatura string

const (
	StatusActive    StatusAssinatura = "active"
	StatusCancelled StatusAssinatura = "cancelled"
)

// Assinatura é o registro de uma concessão de plano premium feita por um
// provedor de pagamento. As linhas nunca são deletadas (append/update
// apenas), servindo de trilha de auditoria.
//
// ATENÇÃO: não há constraint de unicidade em (provider,
// provider_subscription_id). A reentrega do mesmo evento de pagamento
// gera uma linha duplicada. Esse comportamento é conhecido e está
// documentado no DESIGN.md.
type Assinatura struct {
	ID                     int64            `json:"id"`
	UsuarioID              string           `json:"user_id"`
	Provider               Provider         `json:"provider"`
	ProviderSubscriptionID string           `json:"provider_subscription_id"`
	Status                 StatusAssinatura `json:"status"`
	PeriodoInicio          time.Time        `json:"current_period_start"`
	PeriodoFim             time.Time        `json:"current_period_end"`
}

// Ativa informa se a assinatura ainda concede acesso premium.
func (a *Assinatura) Ativa() bool {
	return a.Status == StatusActive
}
