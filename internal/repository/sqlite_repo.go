package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/willjrcristo/opportuneo-api/internal/domain"
)

// usuarioSQLiteRepo é a implementação SQLite do UsuarioRepository.
type usuarioSQLiteRepo struct {
	db *sql.DB
}

// NewUsuarioRepository injeta a conexão com o banco no repositório de usuários.
func NewUsuarioRepository(db *sql.DB) UsuarioRepository {
	return &usuarioSQLiteRepo{db: db}
}

func (r *usuarioSQLiteRepo) Create(ctx context.Context, usuario domain.Usuario) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO usuarios(id, nome, email, senha_hash, plano) VALUES(?, ?, ?, ?, ?)",
		usuario.ID, usuario.Nome, usuario.Email, usuario.SenhaHash, usuario.Plano,
	)
	return err
}

func (r *usuarioSQLiteRepo) GetByID(ctx context.Context, id string) (*domain.Usuario, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, nome, email, senha_hash, plano FROM usuarios WHERE id = ?", id)
	return scanUsuario(row)
}

func (r *usuarioSQLiteRepo) GetByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, nome, email, senha_hash, plano FROM usuarios WHERE email = ?", email)
	return scanUsuario(row)
}

func scanUsuario(row *sql.Row) (*domain.Usuario, error) {
	var u domain.Usuario
	if err := row.Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Plano); err != nil {
		// Usuário não encontrado não é erro de infraestrutura.
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *usuarioSQLiteRepo) UpdateNome(ctx context.Context, id, nome string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE usuarios SET nome = ? WHERE id = ?", nome, id)
	return err
}

func (r *usuarioSQLiteRepo) UpdatePlano(ctx context.Context, id string, plano domain.Plano) error {
	_, err := r.db.ExecContext(ctx, "UPDATE usuarios SET plano = ? WHERE id = ?", plano, id)
	return err
}

// assinaturaSQLiteRepo é a implementação SQLite do AssinaturaRepository.
type assinaturaSQLiteRepo struct {
	db *sql.DB
}

// NewAssinaturaRepository injeta a conexão com o banco no repositório de assinaturas.
func NewAssinaturaRepository(db *sql.DB) AssinaturaRepository {
	return &assinaturaSQLiteRepo{db: db}
}

func (r *assinaturaSQLiteRepo) Create(ctx context.Context, a domain.Assinatura) error {
	// Não há unicidade em (provider, provider_subscription_id): a reentrega
	// de um evento de pagamento insere uma segunda linha de propósito.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assinaturas(usuario_id, provider, provider_subscription_id, status, periodo_inicio, periodo_fim)
		 VALUES(?, ?, ?, ?, ?, ?)`,
		a.UsuarioID, a.Provider, a.ProviderSubscriptionID, a.Status, a.PeriodoInicio, a.PeriodoFim,
	)
	return err
}

func (r *assinaturaSQLiteRepo) GetByProviderSubscriptionID(ctx context.Context, ref string) (*domain.Assinatura, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, usuario_id, provider, provider_subscription_id, status, periodo_inicio, periodo_fim
		 FROM assinaturas WHERE provider_subscription_id = ? ORDER BY id DESC LIMIT 1`, ref)

	var a domain.Assinatura
	err := row.Scan(&a.ID, &a.UsuarioID, &a.Provider, &a.ProviderSubscriptionID, &a.Status, &a.PeriodoInicio, &a.PeriodoFim)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *assinaturaSQLiteRepo) UpdateStatus(ctx context.Context, id int64, status domain.StatusAssinatura) error {
	_, err := r.db.ExecContext(ctx, "UPDATE assinaturas SET status = ? WHERE id = ?", status, id)
	return err
}

func (r *assinaturaSQLiteRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]domain.Assinatura, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, usuario_id, provider, provider_subscription_id, status, periodo_inicio, periodo_fim
		 FROM assinaturas WHERE usuario_id = ? ORDER BY id DESC`, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assinaturas []domain.Assinatura
	for rows.Next() {
		var a domain.Assinatura
		if err := rows.Scan(&a.ID, &a.UsuarioID, &a.Provider, &a.ProviderSubscriptionID, &a.Status, &a.PeriodoInicio, &a.PeriodoFim); err != nil {
			return nil, err
		}
		assinaturas = append(assinaturas, a)
	}
	return assinaturas, rows.Err()
}

// sessaoSQLiteRepo é a implementação SQLite do SessaoRepository.
type sessaoSQLiteRepo struct {
	db *sql.DB
}

// NewSessaoRepository injeta a conexão com o banco no repositório de sessões.
func NewSessaoRepository(db *sql.DB) SessaoRepository {
	return &sessaoSQLiteRepo{db: db}
}

func (r *sessaoSQLiteRepo) Create(ctx context.Context, s Sessao) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sessoes(token, usuario_id, criado_em, expira_em) VALUES(?, ?, ?, ?)",
		s.Token, s.UsuarioID, s.CriadoEm, s.ExpiraEm,
	)
	return err
}

func (r *sessaoSQLiteRepo) GetByToken(ctx context.Context, token string) (*Sessao, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT token, usuario_id, criado_em, expira_em FROM sessoes WHERE token = ?", token)

	var s Sessao
	if err := row.Scan(&s.Token, &s.UsuarioID, &s.CriadoEm, &s.ExpiraEm); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if time.Now().After(s.ExpiraEm) {
		return nil, nil
	}
	return &s, nil
}

func (r *sessaoSQLiteRepo) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM sessoes WHERE token = ?", token)
	return err
}
