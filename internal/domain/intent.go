package domain

// IntentKind discrimina os tipos de intenção normalizada que o
// interpretador de eventos produz a partir de um webhook verificado.
type IntentKind int

const (
	// IntentIgnore: evento reconhecido como irrelevante. Não é erro.
	IntentIgnore IntentKind = iota
	// IntentGrantPremium: conceder premium ao usuário.
	IntentGrantPremium
	// IntentRevokeBySubscriptionID: revogar premium pela assinatura do provedor.
	IntentRevokeBySubscriptionID
)

// Intent é a representação interna ("variante etiquetada") de um evento
// de pagamento, desacoplada do formato específico de cada provedor.
// Modelar isso como um tipo explícito permite testar o interpretador
// isolado do parsing HTTP e o reconciler isolado dos dois.
type Intent struct {
	Kind IntentKind

	// Preenchidos quando Kind == IntentGrantPremium.
	UsuarioID   string
	Provider    Provider
	ProviderRef string

	// Preenchido quando Kind == IntentRevokeBySubscriptionID.
	ProviderSubscriptionID string
}

// Ignorar é a intenção vazia, usada para eventos não tratados.
var Ignorar = Intent{Kind: IntentIgnore}
