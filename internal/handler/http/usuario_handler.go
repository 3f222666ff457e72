package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/opportuneo-api/internal/auth"
	"github.com/willjrcristo/opportuneo-api/internal/domain"
	"github.com/willjrcristo/opportuneo-api/internal/service"
)

// PerfilService é o contrato que o handler de perfil espera.
type PerfilService interface {
	GetPerfil(ctx context.Context, id string) (*domain.Usuario, error)
	AtualizarNome(ctx context.Context, id, nome string) (*domain.Usuario, error)
	ListarAssinaturas(ctx context.Context, usuarioID string) ([]domain.Assinatura, error)
}

// UsuarioHandler lida com as rotas de perfil da área logada.
type UsuarioHandler struct {
	service PerfilService
}

// NewUsuarioHandler cria o handler de perfil.
func NewUsuarioHandler(s PerfilService) *UsuarioHandler {
	return &UsuarioHandler{service: s}
}

// Routes define as rotas de /api/user (todas atrás do middleware de auth).
func (h *UsuarioHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/profile", h.GetProfile)
	r.Put("/profile", h.UpdateProfile)
	r.Get("/subscriptions", h.GetSubscriptions)
	return r
}

// @Summary      Busca o perfil do usuário autenticado
// @Tags         usuario
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]string
// @Router       /api/user/profile [get]
func (h *UsuarioHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())

	perfil, err := h.service.GetPerfil(r.Context(), usuario.ID)
	if err != nil {
		if errors.Is(err, service.ErrUsuarioNaoEncontrado) {
			respondWithError(w, http.StatusNotFound, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao buscar perfil")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"profile": perfil})
}

type updateProfileRequest struct {
	Nome string `json:"nome"`
}

// @Summary      Atualiza o nome do usuário autenticado
// @Tags         usuario
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Novo nome"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /api/user/profile [put]
func (h *UsuarioHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	usuario := auth.UsuarioFromContext(r.Context())

	perfil, err := h.service.AtualizarNome(r.Context(), usuario.ID, req.Nome)
	if err != nil {
		if errors.Is(err, service.ErrNomeInvalido) {
			respondWithError(w, http.StatusBadRequest, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao atualizar perfil")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"profile": perfil})
}

// @Summary      Lista o histórico de assinaturas do usuário autenticado
// @Tags         usuario
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/user/subscriptions [get]
func (h *UsuarioHandler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	usuario := auth.UsuarioFromContext(r.Context())

	assinaturas, err := h.service.ListarAssinaturas(r.Context(), usuario.ID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Erro ao buscar assinaturas")
		return
	}
	if assinaturas == nil {
		assinaturas = []domain.Assinatura{}
	}

	respondWithJSON(w, http.StatusOK, map[string]any{"subscriptions": assinaturas})
}
