package repository

import (
	"context"
	"time"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// As interfaces abaixo definem o contrato de persistência de cada entidade.
// Os serviços dependem delas (e não da implementação SQLite), o que permite
// trocar o banco e 'mockar' tudo nos testes.

// UsuarioRepository cuida da tabela de usuários.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario domain.Usuario) error
	GetByID(ctx context.Context, id string) (*domain.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*domain.Usuario, error)
	UpdateNome(ctx context.Context, id, nome string) error
	// UpdatePlano é chamado somente pelo Reconciler.
	UpdatePlano(ctx context.Context, id string, plano domain.Plano) error
}

// AssinaturaRepository cuida da tabela de assinaturas.
// Linhas nunca são deletadas: só inserimos e atualizamos o status.
type AssinaturaRepository interface {
	Create(ctx context.Context, assinatura domain.Assinatura) error
	// GetByProviderSubscriptionID retorna nil, nil quando não há linha
	// correspondente (revogação de referência desconhecida é ignorada).
	GetByProviderSubscriptionID(ctx context.Context, ref string) (*domain.Assinatura, error)
	UpdateStatus(ctx context.Context, id int64, status domain.StatusAssinatura) error
	ListByUsuario(ctx context.Context, usuarioID string) ([]domain.Assinatura, error)
}

// Sessao é uma sessão autenticada (token bearer opaco).
type Sessao struct {
	Token     string
	UsuarioID string
	CriadoEm  time.Time
	ExpiraEm  time.Time
}

// SessaoRepository cuida da tabela de sessões.
type SessaoRepository interface {
	Create(ctx context.Context, sessao Sessao) error
	// GetByToken retorna nil, nil quando o token não existe ou expirou.
	GetByToken(ctx context.Context, token string) (*Sessao, error)
	Delete(ctx context.Context, token string) error
}
