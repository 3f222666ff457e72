package service

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// Cotas do plano free por ferramenta. Premium não tem limite.
const (
	limiteGratisBoolean = 5
	limiteGratisSEO     = 3
)

// ToolsService implementa as ferramentas do dashboard que ficam atrás
// do gate de plano: construtor de query booleana, pesquisa de
// palavras-chave de SEO e busca de vagas.
//
// As cotas do plano free são contadas em memória, por processo — o
// mesmo alcance que o contador tinha no front original. Reiniciar o
// servidor zera as cotas.
type ToolsService struct {
	mu          sync.Mutex
	usosBoolean map[string]int
	usosSEO     map[string]int

	rng  *rand.Rand
	rngM sync.Mutex

	vagas []domain.Vaga
}

// NewToolsService cria o serviço com o catálogo de vagas embutido.
func NewToolsService(seed int64) *ToolsService {
	return &ToolsService{
		usosBoolean: make(map[string]int),
		usosSEO:     make(map[string]int),
		rng:         rand.New(rand.NewSource(seed)),
		vagas:       catalogoVagas,
	}
}

// CriterioBoolean são os campos do formulário do construtor de query.
type CriterioBoolean struct {
	Keywords string
	Location string
	Exclude  string
	Site     string
}

// GerarQueryBoolean monta uma query booleana para Google/LinkedIn:
// keywords entre aspas agrupadas com OR, localização com AND, exclusões
// com -"palavra" e filtro site: no final.
//
// Exemplo: ("software developer" OR "frontend developer") AND "Lagos" site:linkedin.com
func (s *ToolsService) GerarQueryBoolean(usuario *domain.Usuario, criterio CriterioBoolean) (string, error) {
	if err := s.consumirCota(usuario, s.usosBoolean, limiteGratisBoolean); err != nil {
		return "", err
	}

	var query strings.Builder

	if kws := separarLista(criterio.Keywords); len(kws) > 0 {
		if len(kws) > 1 {
			quoted := make([]string, len(kws))
			for i, kw := range kws {
				quoted[i] = `"` + kw + `"`
			}
			query.WriteString("(" + strings.Join(quoted, " OR ") + ")")
		} else {
			query.WriteString(`"` + kws[0] + `"`)
		}
	}

	if loc := strings.TrimSpace(criterio.Location); loc != "" {
		if query.Len() > 0 {
			query.WriteString(" AND ")
		}
		query.WriteString(`"` + loc + `"`)
	}

	for _, palavra := range separarLista(criterio.Exclude) {
		query.WriteString(` -"` + palavra + `"`)
	}

	if site := strings.TrimSpace(criterio.Site); site != "" {
		query.WriteString(" site:" + site)
	}

	return query.String(), nil
}

// AnalisarKeyword gera as variações e métricas estimadas de uma
// palavra-chave para a ferramenta de SEO.
func (s *ToolsService) AnalisarKeyword(usuario *domain.Usuario, keyword string) ([]domain.KeywordMetrica, error) {
	if err := s.consumirCota(usuario, s.usosSEO, limiteGratisSEO); err != nil {
		return nil, err
	}

	keyword = strings.TrimSpace(keyword)
	variacoes := []string{
		keyword,
		keyword + " jobs",
		keyword + " salary",
		keyword + " skills",
		"remote " + keyword,
	}

	niveis := []string{"Low", "Medium", "High"}

	s.rngM.Lock()
	defer s.rngM.Unlock()

	metricas := make([]domain.KeywordMetrica, 0, len(variacoes))
	for _, v := range variacoes {
		metricas = append(metricas, domain.KeywordMetrica{
			Keyword:      v,
			Volume:       s.rng.Intn(10000) + 100,
			Dificuldade:  niveis[s.rng.Intn(len(niveis))],
			CPC:          fmt.Sprintf("$%.2f", s.rng.Float64()*5+0.5),
			Concorrencia: niveis[s.rng.Intn(len(niveis))],
		})
	}
	return metricas, nil
}

// BuscarVagas filtra o catálogo pelos critérios informados:
// keyword no título/descrição, localização por substring e tipo exato.
func (s *ToolsService) BuscarVagas(keyword, localizacao, tipo string) []domain.Vaga {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	localizacao = strings.ToLower(strings.TrimSpace(localizacao))
	tipo = strings.ToLower(strings.TrimSpace(tipo))

	resultado := make([]domain.Vaga, 0)
	for _, vaga := range s.vagas {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(vaga.Titulo), keyword) &&
			!strings.Contains(strings.ToLower(vaga.Descricao), keyword) {
			continue
		}
		if localizacao != "" && !strings.Contains(strings.ToLower(vaga.Localizacao), localizacao) {
			continue
		}
		if tipo != "" && tipo != "all" && strings.ToLower(vaga.Tipo) != tipo {
			continue
		}
		resultado = append(resultado, vaga)
	}
	return resultado
}

// consumirCota debita um uso da cota free; usuários premium passam direto.
func (s *ToolsService) consumirCota(usuario *domain.Usuario, usos map[string]int, limite int) error {
	if usuario.Premium() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if usos[usuario.ID] >= limite {
		return ErrLimiteGratisAtingido
	}
	usos[usuario.ID]++
	return nil
}

func separarLista(entrada string) []string {
	var itens []string
	for _, item := range strings.Split(entrada, ",") {
		if item = strings.TrimSpace(item); item != "" {
			itens = append(itens, item)
		}
	}
	return itens
}
