package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/service"
)

// MockToolsService implementa ToolsService com funções injetáveis.
type MockToolsService struct {
	GerarQueryBooleanFn func(usuario *domain.Usuario, criterio service.CriterioBoolean) (string, error)
	AnalisarKeywordFn   func(usuario *domain.Usuario, keyword string) ([]domain.KeywordMetrica, error)
	BuscarVagasFn       func(keyword, localizacao, tipo string) []domain.Vaga
}

func (m *MockToolsService) GerarQueryBoolean(usuario *domain.Usuario, criterio service.CriterioBoolean) (string, error) {
	return m.GerarQueryBooleanFn(usuario, criterio)
}
func (m *MockToolsService) AnalisarKeyword(usuario *domain.Usuario, keyword string) ([]domain.KeywordMetrica, error) {
	return m.AnalisarKeywordFn(usuario, keyword)
}
func (m *MockToolsService) BuscarVagas(keyword, localizacao, tipo string) []domain.Vaga {
	return m.BuscarVagasFn(keyword, localizacao, tipo)
}

func TestToolsHandler_GerarQueryBoolean(t *testing.T) {
	t.Run("sucesso - devolve a query montada", func(t *testing.T) {
		mockService := &MockToolsService{
			GerarQueryBooleanFn: func(usuario *domain.Usuario, criterio service.CriterioBoolean) (string, error) {
				assert.Equal(t, "golang", criterio.Keywords)
				assert.Equal(t, "Lagos", criterio.Location)
				return `"golang" AND "Lagos"`, nil
			},
		}
		handler := NewToolsHandler(mockService)

		body, _ := json.Marshal(map[string]string{"keywords": "golang", "location": "Lagos"})
		req := httptest.NewRequest("POST", "/api/tools/boolean", bytes.NewBuffer(body))
		req = requisicaoAutenticada(req, &domain.Usuario{ID: "u1", Plano: domain.PlanoPremium})
		rr := httptest.NewRecorder()
		handler.GerarQueryBoolean(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resposta map[string]string
		json.Unmarshal(rr.Body.Bytes(), &resposta)
		assert.Equal(t, `"golang" AND "Lagos"`, resposta["query"])
	})

	t.Run("erro - cota do plano free esgotada devolve 403 com convite de upgrade", func(t *testing.T) {
		mockService := &MockToolsService{
			GerarQueryBooleanFn: func(usuario *domain.Usuario, criterio service.CriterioBoolean) (string, error) {
				return "", service.ErrLimiteGratisAtingido
			},
		}
		handler := NewToolsHandler(mockService)

		body, _ := json.Marshal(map[string]string{"keywords": "golang"})
		req := httptest.NewRequest("POST", "/api/tools/boolean", bytes.NewBuffer(body))
		req = requisicaoAutenticada(req, &domain.Usuario{ID: "u1", Plano: domain.PlanoFree})
		rr := httptest.NewRecorder()
		handler.GerarQueryBoolean(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Contains(t, rr.Body.String(), "Premium")
	})
}

func TestToolsHandler_AnalisarKeyword(t *testing.T) {
	t.Run("sucesso - devolve as métricas", func(t *testing.T) {
		mockService := &MockToolsService{
			AnalisarKeywordFn: func(usuario *domain.Usuario, keyword string) ([]domain.KeywordMetrica, error) {
				return []domain.KeywordMetrica{{Keyword: keyword, Volume: 1200, Dificuldade: "Medium"}}, nil
			},
		}
		handler := NewToolsHandler(mockService)

		body, _ := json.Marshal(map[string]string{"keyword": "data analyst"})
		req := httptest.NewRequest("POST", "/api/tools/seo", bytes.NewBuffer(body))
		req = requisicaoAutenticada(req, &domain.Usuario{ID: "u1", Plano: domain.PlanoPremium})
		rr := httptest.NewRecorder()
		handler.AnalisarKeyword(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "data analyst")
	})

	t.Run("erro - keyword vazia devolve 400 sem chamar o serviço", func(t *testing.T) {
		mockService := &MockToolsService{
			AnalisarKeywordFn: func(usuario *domain.Usuario, keyword string) ([]domain.KeywordMetrica, error) {
				t.Fatal("o serviço não deveria ser chamado")
				return nil, nil
			},
		}
		handler := NewToolsHandler(mockService)

		body, _ := json.Marshal(map[string]string{"keyword": ""})
		req := httptest.NewRequest("POST", "/api/tools/seo", bytes.NewBuffer(body))
		req = requisicaoAutenticada(req, &domain.Usuario{ID: "u1"})
		rr := httptest.NewRecorder()
		handler.AnalisarKeyword(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestToolsHandler_BuscarVagas(t *testing.T) {
	t.Run("sucesso - repassa os filtros da query string", func(t *testing.T) {
		mockService := &MockToolsService{
			BuscarVagasFn: func(keyword, localizacao, tipo string) []domain.Vaga {
				assert.Equal(t, "frontend", keyword)
				assert.Equal(t, "lagos", localizacao)
				assert.Equal(t, "contract", tipo)
				return []domain.Vaga{{ID: "1", Titulo: "Frontend Developer"}}
			},
		}
		handler := NewToolsHandler(mockService)

		req := httptest.NewRequest("GET", "/api/tools/jobs?keyword=frontend&location=lagos&type=contract", nil)
		rr := httptest.NewRecorder()
		handler.BuscarVagas(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Frontend Developer")
	})
}
