package domain

// Plano representa o nível de acesso do usuário na plataforma.
type Plano string

const (
	PlanoFree    Plano = "free"
	PlanoPremium Plano = "premium"
)

// Usuario é a nossa entidade central. O campo Plano é a "fonte da verdade"
// para o gate de funcionalidades premium e só deve ser alterado pelo
// Reconciler (via eventos verificados dos provedores de pagamento).
type Usuario struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Plano Plano  `json:"plan"`

	// Hash bcrypt da senha. Nunca exposto na API JSON.
	SenhaHash string `json:"-"`
}

// Premium informa se o usuário tem acesso às ferramentas pagas.
func (u *Usuario) Premium() bool {
	return u.Plano == PlanoPremium
}
