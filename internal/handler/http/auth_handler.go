package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/willjrcristo/opportuneo-api/internal/auth"
	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// AuthService é o contrato que o handler de autenticação espera.
type AuthService interface {
	Signup(ctx context.Context, nome, email, senha string) (*domain.Usuario, error)
	Login(ctx context.Context, email, senha string) (string, *domain.Usuario, error)
	Logout(ctx context.Context, token string) error
}

// AuthHandler expõe cadastro, login e logout.
type AuthHandler struct {
	service AuthService
}

// NewAuthHandler cria o handler de autenticação.
func NewAuthHandler(s AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

// Routes define as rotas públicas de autenticação.
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	return r
}

type signupRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// @Summary      Cadastra um novo usuário
// @Description  Cria a conta com plano free
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Dados de cadastro"
// @Success      201   {object}  domain.Usuario
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	usuario, err := h.service.Signup(r.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrDadosInvalidos):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, auth.ErrEmailJaCadastrado):
			respondWithError(w, http.StatusConflict, err.Error())
		default:
			respondWithError(w, http.StatusInternalServerError, "Erro ao criar conta")
		}
		return
	}

	respondWithJSON(w, http.StatusCreated, usuario)
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// @Summary      Autentica um usuário
// @Description  Valida as credenciais e devolve o token de sessão
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credenciais"
// @Success      200   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Corpo da requisição inválido")
		return
	}

	token, usuario, err := h.service.Login(r.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, auth.ErrCredenciaisInvalidas) {
			respondWithError(w, http.StatusUnauthorized, err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "Erro ao autenticar")
		}
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"token":   token,
		"usuario": usuario,
	})
}

// @Summary      Encerra a sessão
// @Tags         auth
// @Produce      json
// @Success      204  {string}  string  "No Content"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			respondWithError(w, http.StatusInternalServerError, "Erro ao encerrar sessão")
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
