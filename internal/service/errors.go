package service

import "errors"

// Erros de negócio dos fluxos de pagamento e perfil. Os handlers usam
// errors.Is para mapear cada um no status HTTP correto.
var (
	// ErrAssinaturaWebhookInvalida: assinatura criptográfica ausente ou
	// incorreta. Sempre 400, nunca toca o banco.
	ErrAssinaturaWebhookInvalida = errors.New("assinatura do webhook ausente ou inválida")

	// ErrPayloadInvalido: corpo do webhook não é um JSON válido.
	ErrPayloadInvalido = errors.New("payload do webhook inválido")

	// ErrMetadataSemUsuario: evento de pagamento sem user_id no metadata.
	// Diferente de "evento ignorado": isso é falha de interpretação (400).
	ErrMetadataSemUsuario = errors.New("evento sem user_id no metadata")

	// ErrUsuarioNaoEncontrado é retornado pelas consultas de perfil.
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")

	// ErrNomeInvalido: atualização de perfil com nome vazio.
	ErrNomeInvalido = errors.New("nome inválido")

	// ErrLimiteGratisAtingido: cota do plano free esgotada na ferramenta.
	ErrLimiteGratisAtingido = errors.New("limite do plano gratuito atingido")
)
