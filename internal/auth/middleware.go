package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

type contextKey struct{}

var usuarioKey contextKey

// UsuarioFromContext devolve o usuário autenticado carregado pelo
// middleware, ou nil se a requisição não passou por ele.
func UsuarioFromContext(ctx context.Context) *domain.Usuario {
	usuario, _ := ctx.Value(usuarioKey).(*domain.Usuario)
	return usuario
}

// ContextWithUsuario injeta um usuário no contexto. Útil nos testes de handler.
func ContextWithUsuario(ctx context.Context, usuario *domain.Usuario) context.Context {
	return context.WithValue(ctx, usuarioKey, usuario)
}

// Resolver abstrai o serviço de autenticação para o middleware.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*domain.Usuario, error)
}

// Middleware exige um header "Authorization: Bearer <token>" válido e
// coloca o usuário correspondente no contexto da requisição.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				unauthorized(w)
				return
			}

			usuario, err := resolver.Resolve(r.Context(), token)
			if err != nil || usuario == nil {
				unauthorized(w)
				return
			}

			ctx := ContextWithUsuario(r.Context(), usuario)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Unauthorized"}`))
}
