package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willjrcristo/opportuneo-api/internal/auth"
	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// MockAuthService implementa AuthService com funções injetáveis.
type MockAuthService struct {
	SignupFn func(ctx context.Context, nome, email, senha string) (*domain.Usuario, error)
	LoginFn  func(ctx context.Context, email, senha string) (string, *domain.Usuario, error)
	LogoutFn func(ctx context.Context, token string) error
}

func (m *MockAuthService) Signup(ctx context.Context, nome, email, senha string) (*domain.Usuario, error) {
	return m.SignupFn(ctx, nome, email, senha)
}
func (m *MockAuthService) Login(ctx context.Context, email, senha string) (string, *domain.Usuario, error) {
	return m.LoginFn(ctx, email, senha)
}
func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	return m.LogoutFn(ctx, token)
}

func TestAuthHandler_Signup(t *testing.T) {
	t.Run("sucesso - devolve 201 com o usuário criado", func(t *testing.T) {
		mockService := &MockAuthService{
			SignupFn: func(ctx context.Context, nome, email, senha string) (*domain.Usuario, error) {
				return &domain.Usuario{ID: "u1", Nome: nome, Email: email, Plano: domain.PlanoFree}, nil
			},
		}
		handler := NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"nome": "Will", "email": "will@email.com", "senha": "senha123"})
		req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var usuario domain.Usuario
		json.Unmarshal(rr.Body.Bytes(), &usuario)
		assert.Equal(t, "u1", usuario.ID)
		assert.Equal(t, domain.PlanoFree, usuario.Plano)
	})

	t.Run("erro - dados inválidos devolvem 400", func(t *testing.T) {
		mockService := &MockAuthService{
			SignupFn: func(ctx context.Context, nome, email, senha string) (*domain.Usuario, error) {
				return nil, auth.ErrDadosInvalidos
			},
		}
		handler := NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"nome": "", "email": "x", "senha": "1"})
		req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("erro - e-mail duplicado devolve 409", func(t *testing.T) {
		mockService := &MockAuthService{
			SignupFn: func(ctx context.Context, nome, email, senha string) (*domain.Usuario, error) {
				return nil, auth.ErrEmailJaCadastrado
			},
		}
		handler := NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"nome": "Will", "email": "will@email.com", "senha": "senha123"})
		req := httptest.NewRequest("POST", "/auth/signup", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sucesso - devolve token e usuário", func(t *testing.T) {
		mockService := &MockAuthService{
			LoginFn: func(ctx context.Context, email, senha string) (string, *domain.Usuario, error) {
				return "tok123", &domain.Usuario{ID: "u1", Email: email}, nil
			},
		}
		handler := NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"email": "will@email.com", "senha": "senha123"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resposta map[string]any
		json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.Equal(t, "tok123", resposta["token"])
	})

	t.Run("erro - credenciais inválidas devolvem 401", func(t *testing.T) {
		mockService := &MockAuthService{
			LoginFn: func(ctx context.Context, email, senha string) (string, *domain.Usuario, error) {
				return "", nil, auth.ErrCredenciaisInvalidas
			},
		}
		handler := NewAuthHandler(mockService)

		body, _ := json.Marshal(map[string]string{"email": "will@email.com", "senha": "errada"})
		req := httptest.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("sucesso - encerra a sessão do token do header", func(t *testing.T) {
		var tokenRecebido string
		mockService := &MockAuthService{
			LogoutFn: func(ctx context.Context, token string) error {
				tokenRecebido = token
				return nil
			},
		}
		handler := NewAuthHandler(mockService)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer tok123")
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "tok123", tokenRecebido)
	})

	t.Run("sucesso - sem header devolve 204 sem chamar o serviço", func(t *testing.T) {
		mockService := &MockAuthService{
			LogoutFn: func(ctx context.Context, token string) error {
				t.Fatal("o serviço não deveria ser chamado")
				return nil
			},
		}
		handler := NewAuthHandler(mockService)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		rr := httptest.NewRecorder()
		handler.Logout(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
