package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/repository"
)

// --- Fakes em memória ---

type usuariosFake struct {
	mu       sync.Mutex
	porID    map[string]*domain.Usuario
	porEmail map[string]*domain.Usuario
}

func novoUsuariosFake() *usuariosFake {
	return &usuariosFake{porID: map[string]*domain.Usuario{}, porEmail: map[string]*domain.Usuario{}}
}

func (f *usuariosFake) Create(ctx context.Context, u domain.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.porID[u.ID] = &u
	f.porEmail[u.Email] = &u
	return nil
}

func (f *usuariosFake) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.porID[id], nil
}

func (f *usuariosFake) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.porEmail[email], nil
}

func (f *usuariosFake) UpdateNome(ctx context.Context, id, nome string) error { return nil }

func (f *usuariosFake) UpdatePlano(ctx context.Context, id string, plano domain.Plano) error {
	return nil
}

type sessoesFake struct {
	mu       sync.Mutex
	porToken map[string]repository.Sessao
}

func novoSessoesFake() *sessoesFake {
	return &sessoesFake{porToken: map[string]repository.Sessao{}}
}

func (f *sessoesFake) Create(ctx context.Context, s repository.Sessao) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.porToken[s.Token] = s
	return nil
}

func (f *sessoesFake) GetByToken(ctx context.Context, token string) (*repository.Sessao, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.porToken[token]
	if !ok || time.Now().After(s.ExpiraEm) {
		return nil, nil
	}
	return &s, nil
}

func (f *sessoesFake) Delete(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.porToken, token)
	return nil
}

// --- Testes ---

func TestService_Signup(t *testing.T) {
	t.Run("sucesso - cria usuário free com senha hasheada", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())

		usuario, err := svc.Signup(context.Background(), "Will", "will@email.com", "senha123")
		assert.NoError(t, err)
		assert.NotEmpty(t, usuario.ID)
		assert.Equal(t, domain.PlanoFree, usuario.Plano)
		assert.NotEqual(t, "senha123", usuario.SenhaHash)
	})

	t.Run("erro - e-mail já cadastrado", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())

		_, err := svc.Signup(context.Background(), "Will", "will@email.com", "senha123")
		assert.NoError(t, err)

		_, err = svc.Signup(context.Background(), "Outro", "will@email.com", "senha456")
		assert.ErrorIs(t, err, ErrEmailJaCadastrado)
	})

	t.Run("erro - dados inválidos", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())

		casos := []struct {
			nome, email, senha string
		}{
			{"", "will@email.com", "senha123"},
			{"Will", "sem-arroba", "senha123"},
			{"Will", "will@email.com", "curta"},
		}
		for _, c := range casos {
			_, err := svc.Signup(context.Background(), c.nome, c.email, c.senha)
			assert.ErrorIs(t, err, ErrDadosInvalidos)
		}
	})
}

func TestService_Login(t *testing.T) {
	t.Run("sucesso - credenciais corretas abrem sessão", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())
		cadastrado, _ := svc.Signup(context.Background(), "Will", "will@email.com", "senha123")

		token, usuario, err := svc.Login(context.Background(), "will@email.com", "senha123")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, cadastrado.ID, usuario.ID)

		// O token resolve de volta para o mesmo usuário.
		resolvido, err := svc.Resolve(context.Background(), token)
		assert.NoError(t, err)
		assert.Equal(t, cadastrado.ID, resolvido.ID)
	})

	t.Run("erro - senha incorreta", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())
		svc.Signup(context.Background(), "Will", "will@email.com", "senha123")

		_, _, err := svc.Login(context.Background(), "will@email.com", "errada123")
		assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
	})

	t.Run("erro - e-mail desconhecido", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())

		_, _, err := svc.Login(context.Background(), "ninguem@email.com", "senha123")
		assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
	})
}

func TestService_Logout(t *testing.T) {
	t.Run("sucesso - o token deixa de resolver", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())
		svc.Signup(context.Background(), "Will", "will@email.com", "senha123")
		token, _, _ := svc.Login(context.Background(), "will@email.com", "senha123")

		assert.NoError(t, svc.Logout(context.Background(), token))

		usuario, err := svc.Resolve(context.Background(), token)
		assert.NoError(t, err)
		assert.Nil(t, usuario)
	})
}

func TestService_Resolve(t *testing.T) {
	t.Run("sucesso - token desconhecido devolve nil sem erro", func(t *testing.T) {
		svc := NewService(novoUsuariosFake(), novoSessoesFake())

		usuario, err := svc.Resolve(context.Background(), "token-inexistente")
		assert.NoError(t, err)
		assert.Nil(t, usuario)
	})
}
