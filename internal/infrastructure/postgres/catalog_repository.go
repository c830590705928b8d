package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var (
	_ repository.TableRepository          = (*TableRepo)(nil)
	_ repository.IngredientRepository     = (*IngredientRepo)(nil)
	_ repository.DishRepository           = (*DishRepo)(nil)
	_ repository.IngredientDishRepository = (*IngredientDishRepo)(nil)
)

// TableRepo mesas sobre PostgreSQL.
type TableRepo struct {
	q Querier
}

// NewTableRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTableRepository(q Querier) *TableRepo {
	return &TableRepo{q: q}
}

const tableColumns = `id, client_id, number, description, status, created_at, updated_at`

func scanTable(row pgx.Row) (*entity.Table, error) {
	var t entity.Table
	err := row.Scan(&t.ID, &t.ClientID, &t.Number, &t.Description, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	return &t, err
}

func (r *TableRepo) Create(ctx context.Context, t *entity.Table) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO tables (client_id, number, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		t.ClientID, t.Number, t.Description, t.Status, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return writeErr("insert table", err)
	}
	return nil
}

func (r *TableRepo) Update(ctx context.Context, t *entity.Table) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE tables SET number = $3, description = $4, status = $5, updated_at = $6
		WHERE id = $1 AND client_id = $2`,
		t.ID, t.ClientID, t.Number, t.Description, t.Status, t.UpdatedAt,
	)
	if err != nil {
		return writeErr("update table", err)
	}
	return affected(tag)
}

func (r *TableRepo) GetByID(ctx context.Context, clientID, id int64) (*entity.Table, error) {
	t, err := scanTable(r.q.QueryRow(ctx,
		`SELECT `+tableColumns+` FROM tables WHERE id = $1 AND client_id = $2`, id, clientID))
	return noRows(t, err, "get table")
}

func (r *TableRepo) List(ctx context.Context, clientID int64) ([]*entity.Table, error) {
	rows, err := r.q.Query(ctx, `SELECT `+tableColumns+` FROM tables WHERE client_id = $1 ORDER BY id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	return collect(rows, scanTable)
}

func (r *TableRepo) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM tables WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return deleteErr("delete table", err)
	}
	return affected(tag)
}

// IngredientRepo ingredientes sobre PostgreSQL.
type IngredientRepo struct {
	q Querier
}

// NewIngredientRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientRepository(q Querier) *IngredientRepo {
	return &IngredientRepo{q: q}
}

const ingredientColumns = `i.id, i.client_id, i.name, i.description, i.created_at, i.updated_at`

func scanIngredient(row pgx.Row) (*entity.Ingredient, error) {
	var i entity.Ingredient
	err := row.Scan(&i.ID, &i.ClientID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	return &i, err
}

func (r *IngredientRepo) Create(ctx context.Context, i *entity.Ingredient) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ingredients (client_id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		i.ClientID, i.Name, i.Description, i.CreatedAt, i.UpdatedAt,
	).Scan(&i.ID)
	if err != nil {
		return writeErr("insert ingredient", err)
	}
	return nil
}

func (r *IngredientRepo) Update(ctx context.Context, i *entity.Ingredient) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE ingredients SET name = $3, description = $4, updated_at = $5
		WHERE id = $1 AND client_id = $2`,
		i.ID, i.ClientID, i.Name, i.Description, i.UpdatedAt,
	)
	if err != nil {
		return writeErr("update ingredient", err)
	}
	return affected(tag)
}

func (r *IngredientRepo) GetByID(ctx context.Context, clientID, id int64) (*entity.Ingredient, error) {
	i, err := scanIngredient(r.q.QueryRow(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients i WHERE i.id = $1 AND i.client_id = $2`, id, clientID))
	return noRows(i, err, "get ingredient")
}

func (r *IngredientRepo) List(ctx context.Context, clientID int64) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+ingredientColumns+` FROM ingredients i WHERE i.client_id = $1 ORDER BY i.id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return collect(rows, scanIngredient)
}

// ListByDish ingredientes del plato ordenados por nombre.
func (r *IngredientRepo) ListByDish(ctx context.Context, clientID, dishID int64) ([]*entity.Ingredient, error) {
	rows, err := r.q.Query(ctx, `
		SELECT DISTINCT `+ingredientColumns+`
		FROM ingredients i
		JOIN ingredients_dishes idh ON idh.ingredient_id = i.id
		JOIN dishes d ON d.id = idh.dish_id
		WHERE idh.dish_id = $1 AND d.client_id = $2
		ORDER BY i.name, i.id`, dishID, clientID)
	if err != nil {
		return nil, fmt.Errorf("list ingredients by dish: %w", err)
	}
	return collect(rows, scanIngredient)
}

func (r *IngredientRepo) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ingredients WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return deleteErr("delete ingredient", err)
	}
	return affected(tag)
}

// DishRepo platos sobre PostgreSQL. Price se mapea a NUMERIC(10,2) con el codec de shopspring/decimal.
type DishRepo struct {
	q Querier
}

// NewDishRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDishRepository(q Querier) *DishRepo {
	return &DishRepo{q: q}
}

const dishColumns = `id, client_id, name, description, status, price, created_at, updated_at`

func scanDish(row pgx.Row) (*entity.Dish, error) {
	var d entity.Dish
	err := row.Scan(&d.ID, &d.ClientID, &d.Name, &d.Description, &d.Status, &d.Price, &d.CreatedAt, &d.UpdatedAt)
	return &d, err
}

func (r *DishRepo) Create(ctx context.Context, d *entity.Dish) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO dishes (client_id, name, description, status, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		d.ClientID, d.Name, d.Description, d.Status, d.Price, d.CreatedAt, d.UpdatedAt,
	).Scan(&d.ID)
	if err != nil {
		return writeErr("insert dish", err)
	}
	return nil
}

func (r *DishRepo) Update(ctx context.Context, d *entity.Dish) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE dishes SET name = $3, description = $4, status = $5, price = $6, updated_at = $7
		WHERE id = $1 AND client_id = $2`,
		d.ID, d.ClientID, d.Name, d.Description, d.Status, d.Price, d.UpdatedAt,
	)
	if err != nil {
		return writeErr("update dish", err)
	}
	return affected(tag)
}

func (r *DishRepo) GetByID(ctx context.Context, clientID, id int64) (*entity.Dish, error) {
	d, err := scanDish(r.q.QueryRow(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE id = $1 AND client_id = $2`, id, clientID))
	return noRows(d, err, "get dish")
}

func (r *DishRepo) List(ctx context.Context, clientID int64) ([]*entity.Dish, error) {
	rows, err := r.q.Query(ctx, `SELECT `+dishColumns+` FROM dishes WHERE client_id = $1 ORDER BY id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	return collect(rows, scanDish)
}

func (r *DishRepo) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM dishes WHERE id = $1 AND client_id = $2`, id, clientID)
	if err != nil {
		return deleteErr("delete dish", err)
	}
	return affected(tag)
}

// IngredientDishRepo asociaciones plato-ingrediente; el tenant se comprueba con un JOIN a dishes.
type IngredientDishRepo struct {
	q Querier
}

// NewIngredientDishRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIngredientDishRepository(q Querier) *IngredientDishRepo {
	return &IngredientDishRepo{q: q}
}

func (r *IngredientDishRepo) Create(ctx context.Context, link *entity.IngredientDish) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ingredients_dishes (ingredient_id, dish_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		link.IngredientID, link.DishID, link.CreatedAt, link.UpdatedAt,
	).Scan(&link.ID)
	if err != nil {
		return writeErr("insert ingredient_dish", err)
	}
	return nil
}

func (r *IngredientDishRepo) GetByID(ctx context.Context, clientID, id int64) (*entity.IngredientDish, error) {
	var l entity.IngredientDish
	err := r.q.QueryRow(ctx, `
		SELECT idh.id, idh.dish_id, idh.ingredient_id, idh.created_at, idh.updated_at
		FROM ingredients_dishes idh
		JOIN dishes d ON d.id = idh.dish_id
		WHERE idh.id = $1 AND d.client_id = $2`, id, clientID,
	).Scan(&l.ID, &l.DishID, &l.IngredientID, &l.CreatedAt, &l.UpdatedAt)
	return noRows(&l, err, "get ingredient_dish")
}

func (r *IngredientDishRepo) Delete(ctx context.Context, clientID, id int64) error {
	tag, err := r.q.Exec(ctx, `
		DELETE FROM ingredients_dishes idh
		USING dishes d
		WHERE idh.id = $1 AND d.id = idh.dish_id AND d.client_id = $2`, id, clientID)
	if err != nil {
		return deleteErr("delete ingredient_dish", err)
	}
	return affected(tag)
}

// collect recorre rows con scan y cierra el cursor.
func collect[T any](rows pgx.Rows, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	defer rows.Close()
	out := []*T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
