package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/opportuneo-api/internal/auth"
	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/service"
)

// ToolsService é o contrato que o handler das ferramentas espera.
type ToolsService interface {
	GerarQueryBoolean(usuario *domain.Usuario, criterio service.CriterioBoolean) (string, error)
	AnalisarKeyword(usuario *domain.Usuario, keyword string) ([]domain.KeywordMetrica, error)
	BuscarVagas(keyword, localizacao, tipo string) []domain.Vaga
}

// ToolsHandler expõe as ferramentas do dashboard (atrás do middleware
// de auth; as cotas do plano free são aplicadas no serviço).
type ToolsHandler struct {
	service ToolsService
}

// NewToolsHandler cria o handler das ferramentas.
func NewToolsHandler(s ToolsService) *ToolsHandler {
	return &ToolsHandler{service: s}
}

// Routes define as rotas de /api/tools.
func (h *ToolsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/boolean", h.GerarQueryBoolean)
	r.Post("/seo", h.AnalisarKeyword)
	r.Get("/jobs", h.BuscarVagas)
	return r
}

type booleanRequest struct {
	Keywords string `json:"keywords"`
	Location string `json:"location"`
	Exclude  string `json:"exclude"`
	Site     string `json:"site"`
}

// @Summary      Gera uma query booleana de busca de vagas
// @Description  Monta a query para Google/LinkedIn a partir dos critérios informados
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body      booleanRequest  true  "Critérios da busca"
// @Success      200   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/tools/boolean [post]
func (h *ToolsHandler) GerarQueryBoolean(w http.ResponseWriter, r *http.Request) {
	var req booleanRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	usuario := auth.UsuarioFromContext(r.Context())

	query, err := h.service.GerarQueryBoolean(usuario, service.CriterioBoolean{
		Keywords: req.Keywords,
		Location: req.Location,
		Exclude:  req.Exclude,
		Site:     req.Site,
	})
	if err != nil {
		responderErroFerramenta(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"query": query})
}

type seoRequest struct {
	Keyword string `json:"keyword"`
}

// @Summary      Analisa uma palavra-chave de SEO
// @Description  Devolve variações da palavra-chave com volume, dificuldade, CPC e concorrência estimados
// @Tags         tools
// @Accept       json
// @Produce      json
// @Param        body  body      seoRequest  true  "Palavra-chave"
// @Success      200   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]string
// @Router       /api/tools/seo [post]
func (h *ToolsHandler) AnalisarKeyword(w http.ResponseWriter, r *http.Request) {
	var req seoRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}
	if req.Keyword == "" {
		respondWithError(w, http.StatusBadRequest, "Informe uma palavra-chave")
		return
	}

	usuario := auth.UsuarioFromContext(r.Context())

	metricas, err := h.service.AnalisarKeyword(usuario, req.Keyword)
	if err != nil {
		responderErroFerramenta(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"keywords": metricas})
}

// @Summary      Busca vagas de emprego
// @Tags         tools
// @Produce      json
// @Param        keyword   query  string  false  "Palavra-chave (título ou descrição)"
// @Param        location  query  string  false  "Localização"
// @Param        type      query  string  false  "Tipo de contrato (Full-time, Contract, ...)"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/tools/jobs [get]
func (h *ToolsHandler) BuscarVagas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	vagas := h.service.BuscarVagas(q.Get("keyword"), q.Get("location"), q.Get("type"))
	respondWithJSON(w, http.StatusOK, map[string]any{"jobs": vagas})
}

func responderErroFerramenta(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrLimiteGratisAtingido) {
		respondWithError(w, http.StatusForbidden, "Limite do plano gratuito atingido. Faça upgrade para Premium.")
		return
	}
	respondWithError(w, http.StatusInternalServerError, "Erro ao executar a ferramenta")
}
