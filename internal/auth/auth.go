package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/repository"
)

// Erros de negócio do fluxo de autenticação.
var (
	ErrCredenciaisInvalidas = errors.New("e-mail ou senha inválidos")
	ErrEmailJaCadastrado    = errors.New("e-mail já cadastrado")
	ErrDadosInvalidos       = errors.New("dados de cadastro inválidos")
)

// Duração padrão de uma sessão autenticada.
const duracaoSessao = 7 * 24 * time.Hour

// Service implementa cadastro, login e resolução de sessões.
// As sessões são tokens bearer opacos persistidos no banco.
type Service struct {
	usuarios repository.UsuarioRepository
	sessoes  repository.SessaoRepository
}

// NewService cria o serviço de autenticação com os repositórios injetados.
func NewService(usuarios repository.UsuarioRepository, sessoes repository.SessaoRepository) *Service {
	return &Service{usuarios: usuarios, sessoes: sessoes}
}

// Signup cria um novo usuário com plano free.
func (s *Service) Signup(ctx context.Context, nome, email, senha string) (*domain.Usuario, error) {
	if nome == "" || !strings.Contains(email, "@") || len(senha) < 6 {
		return nil, ErrDadosInvalidos
	}

	existente, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := domain.Usuario{
		ID:        uuid.NewString(),
		Nome:      nome,
		Email:     email,
		Plano:     domain.PlanoFree,
		SenhaHash: string(hash),
	}
	if err := s.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return &usuario, nil
}

// Login valida as credenciais e abre uma nova sessão, retornando o token.
func (s *Service) Login(ctx context.Context, email, senha string) (string, *domain.Usuario, error) {
	usuario, err := s.usuarios.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if usuario == nil {
		return "", nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(senha)); err != nil {
		return "", nil, ErrCredenciaisInvalidas
	}

	agora := time.Now()
	sessao := repository.Sessao{
		Token:     uuid.NewString(),
		UsuarioID: usuario.ID,
		CriadoEm:  agora,
		ExpiraEm:  agora.Add(duracaoSessao),
	}
	if err := s.sessoes.Create(ctx, sessao); err != nil {
		return "", nil, err
	}
	return sessao.Token, usuario, nil
}

// Logout encerra a sessão do token informado.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessoes.Delete(ctx, token)
}

// Resolve devolve o usuário dono do token, ou nil se a sessão não
// existir ou estiver expirada.
func (s *Service) Resolve(ctx context.Context, token string) (*domain.Usuario, error) {
	sessao, err := s.sessoes.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if sessao == nil {
		return nil, nil
	}
	return s.usuarios.GetByID(ctx, sessao.UsuarioID)
}
