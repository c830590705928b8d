package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación del directorio de clients y membresías sobre PostgreSQL.
type ClientRepo struct {
	q Querier
}

// NewClientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClientRepository(q Querier) *ClientRepo {
	return &ClientRepo{q: q}
}

const clientColumns = `id, name, slug, document_type, document_number, phone, address, created_at, updated_at`

// Create persiste un client. Slug repetido: domain.ErrDuplicate.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (name, slug, document_type, document_number, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Name, c.Slug, c.DocumentType, c.DocumentNumber, c.Phone, c.Address, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return writeErr("insert client", err)
	}
	return nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id = $1`, id))
	return noRows(c, err, "get client")
}

func (r *ClientRepo) GetBySlug(ctx context.Context, slug string) (*entity.Client, error) {
	c, err := scanClient(r.q.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE slug = $1`, slug))
	return noRows(c, err, "get client by slug")
}

func (r *ClientRepo) List(ctx context.Context) ([]*entity.Client, error) {
	rows, err := r.q.Query(ctx, `SELECT `+clientColumns+` FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var out []*entity.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddMember inserta la membresía; si ya existe no hace nada.
func (r *ClientRepo) AddMember(ctx context.Context, clientID, userID int64) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO client_users (client_id, user_id) VALUES ($1, $2)
		ON CONFLICT (client_id, user_id) DO NOTHING`, clientID, userID)
	if err != nil {
		return writeErr("insert client_user", err)
	}
	return nil
}

func (r *ClientRepo) RemoveMember(ctx context.Context, clientID, userID int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM client_users WHERE client_id = $1 AND user_id = $2`, clientID, userID)
	if err != nil {
		return fmt.Errorf("delete client_user: %w", err)
	}
	return affected(tag)
}

func (r *ClientRepo) IsMember(ctx context.Context, clientID, userID int64) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM client_users WHERE client_id = $1 AND user_id = $2)`, clientID, userID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return ok, nil
}

func (r *ClientRepo) ListClientIDs(ctx context.Context, userID int64) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT client_id FROM client_users WHERE user_id = $1 ORDER BY client_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list client ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan client ids: %w", err)
	}
	return ids, nil
}

func scanClient(row pgx.Row) (*entity.Client, error) {
	var c entity.Client
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.DocumentType, &c.DocumentNumber, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	return &c, err
}
