package service

import (
	"context"
	"strings"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/repository"
)

// PerfilService expõe as operações de perfil da área logada.
type PerfilService struct {
	usuarios    repository.UsuarioRepository
	assinaturas repository.AssinaturaRepository
}

// NewPerfilService cria o serviço de perfil com os repositórios injetados.
func NewPerfilService(usuarios repository.UsuarioRepository, assinaturas repository.AssinaturaRepository) *PerfilService {
	return &PerfilService{usuarios: usuarios, assinaturas: assinaturas}
}

// GetPerfil busca o perfil do usuário autenticado.
func (s *PerfilService) GetPerfil(ctx context.Context, id string) (*domain.Usuario, error) {
	usuario, err := s.usuarios.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, ErrUsuarioNaoEncontrado
	}
	return usuario, nil
}

// AtualizarNome troca o nome de exibição do usuário.
func (s *PerfilService) AtualizarNome(ctx context.Context, id, nome string) (*domain.Usuario, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, ErrNomeInvalido
	}
	if err := s.usuarios.UpdateNome(ctx, id, nome); err != nil {
		return nil, err
	}
	return s.GetPerfil(ctx, id)
}

// ListarAssinaturas devolve o histórico de assinaturas do usuário
// (ativas e canceladas), mais recente primeiro. Alimenta a página de
// billing do dashboard.
func (s *PerfilService) ListarAssinaturas(ctx context.Context, usuarioID string) ([]domain.Assinatura, error) {
	return s.assinaturas.ListByUsuario(ctx, usuarioID)
}
