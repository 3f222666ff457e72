package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/repository"
)

// Duração do período concedido por pagamento confirmado.
const duracaoPeriodo = 30 * 24 * time.Hour

// Reconciler aplica uma Intent normalizada ao estado persistido
// (plano do usuário + tabela de assinaturas).
//
// Lacunas conhecidas, herdadas do design original e documentadas no
// DESIGN.md em vez de corrigidas em silêncio:
//   - as duas escritas do grant NÃO são transacionais: falha parcial é
//     possível e só é logada;
//   - não há chave de idempotência: reentrega do mesmo evento duplica a
//     linha de assinatura.
type Reconciler struct {
	usuarios    repository.UsuarioRepository
	assinaturas repository.AssinaturaRepository

	// Injetável nos testes para fixar o relógio.
	agora func() time.Time
}

// NewReconciler cria o reconciler com os repositórios injetados.
func NewReconciler(usuarios repository.UsuarioRepository, assinaturas repository.AssinaturaRepository) *Reconciler {
	return &Reconciler{
		usuarios:    usuarios,
		assinaturas: assinaturas,
		agora:       time.Now,
	}
}

// Aplicar executa a intenção contra o banco.
func (r *Reconciler) Aplicar(ctx context.Context, intent domain.Intent) error {
	switch intent.Kind {
	case domain.IntentGrantPremium:
		return r.conceder(ctx, intent)
	case domain.IntentRevokeBySubscriptionID:
		return r.revogar(ctx, intent)
	default:
		return nil
	}
}

// conceder marca o usuário como premium e registra a assinatura.
// A falha na atualização do plano sobe como erro (o handler responde 500
// e o provedor reentrega o evento); a falha no insert da assinatura é
// apenas logada.
func (r *Reconciler) conceder(ctx context.Context, intent domain.Intent) error {
	if err := r.usuarios.UpdatePlano(ctx, intent.UsuarioID, domain.PlanoPremium); err != nil {
		return fmt.Errorf("erro ao atualizar plano do usuário %s: %w", intent.UsuarioID, err)
	}

	inicio := r.agora()
	assinatura := domain.Assinatura{
		UsuarioID:              intent.UsuarioID,
		Provider:               intent.Provider,
		ProviderSubscriptionID: intent.ProviderRef,
		Status:                 domain.StatusActive,
		PeriodoInicio:          inicio,
		PeriodoFim:             inicio.Add(duracaoPeriodo),
	}
	if err := r.assinaturas.Create(ctx, assinatura); err != nil {
		// Plano já foi atualizado; só registramos a falha parcial.
		slog.Error("erro ao registrar assinatura",
			"usuario_id", intent.UsuarioID,
			"provider", intent.Provider,
			"reference", intent.ProviderRef,
			"error", err)
	}
	return nil
}

// revogar cancela a assinatura pelo id do provedor e rebaixa o dono
// para o plano free. Referência desconhecida é pulada em silêncio
// (respondemos 200 e o provedor não reentrega). Falhas de escrita neste
// caminho são engolidas com log, seguindo o contrato de erros do fluxo.
func (r *Reconciler) revogar(ctx context.Context, intent domain.Intent) error {
	ref := intent.ProviderSubscriptionID

	assinatura, err := r.assinaturas.GetByProviderSubscriptionID(ctx, ref)
	if err != nil {
		slog.Error("erro ao buscar assinatura para revogação", "reference", ref, "error", err)
		return nil
	}
	if assinatura == nil {
		slog.Info("revogação ignorada: assinatura desconhecida", "reference", ref)
		return nil
	}

	if err := r.assinaturas.UpdateStatus(ctx, assinatura.ID, domain.StatusCancelled); err != nil {
		slog.Error("erro ao cancelar assinatura", "id", assinatura.ID, "error", err)
	}

	if err := r.usuarios.UpdatePlano(ctx, assinatura.UsuarioID, domain.PlanoFree); err != nil {
		slog.Error("erro ao rebaixar plano do usuário", "usuario_id", assinatura.UsuarioID, "error", err)
	}
	return nil
}
