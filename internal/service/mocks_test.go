package service

import (
	"context"
	"sync"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// --- Mocks da camada de repositório ---
// Implementações falsas com function fields, para controlar cada cenário.
// Quando a função não é definida, o mock se comporta como um banco em
// memória simples.

type MockUsuarioRepo struct {
	mu       sync.Mutex
	usuarios map[string]*domain.Usuario

	UpdatePlanoFn func(ctx context.Context, id string, plano domain.Plano) error

	// Registro das chamadas de escrita, para asserções.
	PlanosAtualizados []string
}

func NewMockUsuarioRepo(usuarios ...*domain.Usuario) *MockUsuarioRepo {
	m := &MockUsuarioRepo{usuarios: make(map[string]*domain.Usuario)}
	for _, u := range usuarios {
		m.usuarios[u.ID] = u
	}
	return m
}

func (m *MockUsuarioRepo) Create(ctx context.Context, usuario domain.Usuario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.usuarios[usuario.ID] = &usuario
	return nil
}

func (m *MockUsuarioRepo) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.usuarios[id], nil
}

func (m *MockUsuarioRepo) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *MockUsuarioRepo) UpdateNome(ctx context.Context, id, nome string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.usuarios[id]; ok {
		u.Nome = nome
	}
	return nil
}

func (m *MockUsuarioRepo) UpdatePlano(ctx context.Context, id string, plano domain.Plano) error {
	if m.UpdatePlanoFn != nil {
		return m.UpdatePlanoFn(ctx, id, plano)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.usuarios[id]; ok {
		u.Plano = plano
	}
	m.PlanosAtualizados = append(m.PlanosAtualizados, id)
	return nil
}

type MockAssinaturaRepo struct {
	mu          sync.Mutex
	assinaturas []domain.Assinatura
	proximoID   int64

	CreateFn func(ctx context.Context, a domain.Assinatura) error
}

func NewMockAssinaturaRepo() *MockAssinaturaRepo {
	return &MockAssinaturaRepo{proximoID: 1}
}

func (m *MockAssinaturaRepo) Create(ctx context.Context, a domain.Assinatura) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.proximoID
	m.proximoID++
	m.assinaturas = append(m.assinaturas, a)
	return nil
}

func (m *MockAssinaturaRepo) GetByProviderSubscriptionID(ctx context.Context, ref string) (*domain.Assinatura, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.assinaturas) - 1; i >= 0; i-- {
		if m.assinaturas[i].ProviderSubscriptionID == ref {
			a := m.assinaturas[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (m *MockAssinaturaRepo) UpdateStatus(ctx context.Context, id int64, status domain.StatusAssinatura) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.assinaturas {
		if m.assinaturas[i].ID == id {
			m.assinaturas[i].Status = status
		}
	}
	return nil
}

func (m *MockAssinaturaRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]domain.Assinatura, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var resultado []domain.Assinatura
	for _, a := range m.assinaturas {
		if a.UsuarioID == usuarioID {
			resultado = append(resultado, a)
		}
	}
	return resultado, nil
}

// Todas devolve uma cópia de todas as linhas, para asserções.
func (m *MockAssinaturaRepo) Todas() []domain.Assinatura {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Assinatura(nil), m.assinaturas...)
}
