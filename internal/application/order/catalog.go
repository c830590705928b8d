package order

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/application/tenancy"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
)

func (uc *UseCase) tables() *tenancy.Guard[entity.Table, *entity.Table] {
	return tenancy.NewGuard[entity.Table](uc.repos.Tables)
}

func (uc *UseCase) ingredients() *tenancy.Guard[entity.Ingredient, *entity.Ingredient] {
	return tenancy.NewGuard[entity.Ingredient](uc.repos.Ingredients)
}

func (uc *UseCase) dishes() *tenancy.Guard[entity.Dish, *entity.Dish] {
	return tenancy.NewGuard[entity.Dish](uc.repos.Dishes)
}

func validateTable(in dto.TableRequest) (string, error) {
	var v domain.Validator
	checkTableNumber(&v, in.Number)
	checkDescription(&v, in.Description)
	status := availability(&v, in.Status)
	return status, v.Err()
}

// CreateTable crea una mesa. Un número repetido dentro del client devuelve domain.ErrDuplicate.
func (uc *UseCase) CreateTable(ctx context.Context, in dto.TableRequest) (*dto.TableResponse, error) {
	status, err := validateTable(in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	t := &entity.Table{Number: *in.Number, Description: in.Description, Status: status, CreatedAt: now, UpdatedAt: now}
	if err := uc.tables().Create(ctx, t); err != nil {
		return nil, fmt.Errorf("crear mesa: %w", err)
	}
	return toTableResponse(t), nil
}

func (uc *UseCase) GetTable(ctx context.Context, id int64) (*dto.TableResponse, error) {
	t, err := uc.tables().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toTableResponse(t), nil
}

func (uc *UseCase) ListTables(ctx context.Context) ([]*dto.TableResponse, error) {
	list, err := uc.tables().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TableResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTableResponse(t))
	}
	return out, nil
}

// UpdateTable reemplaza número, descripción y estado.
func (uc *UseCase) UpdateTable(ctx context.Context, id int64, in dto.TableRequest) (*dto.TableResponse, error) {
	status, err := validateTable(in)
	if err != nil {
		return nil, err
	}
	t, err := uc.tables().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	t.Number, t.Description, t.Status = *in.Number, in.Description, status
	t.UpdatedAt = uc.now()
	if err := uc.tables().Update(ctx, t); err != nil {
		return nil, fmt.Errorf("actualizar mesa: %w", err)
	}
	return toTableResponse(t), nil
}

// DeleteTable devuelve domain.ErrConflict si la mesa tiene pedidos.
func (uc *UseCase) DeleteTable(ctx context.Context, id int64) error {
	return uc.tables().Delete(ctx, id)
}

func validateIngredient(in dto.IngredientRequest) error {
	var v domain.Validator
	checkName(&v, in.Name)
	checkDescription(&v, in.Description)
	return v.Err()
}

func (uc *UseCase) CreateIngredient(ctx context.Context, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	if err := validateIngredient(in); err != nil {
		return nil, err
	}
	now := uc.now()
	ing := &entity.Ingredient{Name: strings.TrimSpace(in.Name), Description: in.Description, CreatedAt: now, UpdatedAt: now}
	if err := uc.ingredients().Create(ctx, ing); err != nil {
		return nil, fmt.Errorf("crear ingrediente: %w", err)
	}
	out := toIngredientResponse(ing)
	return &out, nil
}

func (uc *UseCase) GetIngredient(ctx context.Context, id int64) (*dto.IngredientResponse, error) {
	ing, err := uc.ingredients().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toIngredientResponse(ing)
	return &out, nil
}

func (uc *UseCase) ListIngredients(ctx context.Context) ([]dto.IngredientResponse, error) {
	list, err := uc.ingredients().List(ctx)
	if err != nil {
		return nil, err
	}
	return toIngredientList(list), nil
}

func (uc *UseCase) UpdateIngredient(ctx context.Context, id int64, in dto.IngredientRequest) (*dto.IngredientResponse, error) {
	if err := validateIngredient(in); err != nil {
		return nil, err
	}
	ing, err := uc.ingredients().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	ing.Name, ing.Description = strings.TrimSpace(in.Name), in.Description
	ing.UpdatedAt = uc.now()
	if err := uc.ingredients().Update(ctx, ing); err != nil {
		return nil, fmt.Errorf("actualizar ingrediente: %w", err)
	}
	out := toIngredientResponse(ing)
	return &out, nil
}

// DeleteIngredient devuelve domain.ErrConflict si algún plato lo usa.
func (uc *UseCase) DeleteIngredient(ctx context.Context, id int64) error {
	return uc.ingredients().Delete(ctx, id)
}

func (uc *UseCase) GetDish(ctx context.Context, id int64) (*dto.DishResponse, error) {
	d, err := uc.dishes().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := loadDish(ctx, uc.repos, d); err != nil {
		return nil, err
	}
	return toDishResponse(d), nil
}

func (uc *UseCase) ListDishes(ctx context.Context) ([]*dto.DishResponse, error) {
	list, err := uc.dishes().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.DishResponse, 0, len(list))
	for _, d := range list {
		if err := loadDish(ctx, uc.repos, d); err != nil {
			return nil, err
		}
		out = append(out, toDishResponse(d))
	}
	return out, nil
}

// UpdateDish reemplaza los campos del plato. Los ingredientes se gestionan con las asociaciones
// plato-ingrediente; in.Ingredients se ignora.
func (uc *UseCase) UpdateDish(ctx context.Context, id int64, in dto.DishRequest) (*dto.DishResponse, error) {
	var v domain.Validator
	checkName(&v, in.Name)
	checkDescription(&v, in.Description)
	checkPrice(&v, in.Price)
	status := availability(&v, in.Status)
	if err := v.Err(); err != nil {
		return nil, err
	}
	d, err := uc.dishes().Get(ctx, id)
	if err != nil {
		return nil, err
	}
	d.Name, d.Description, d.Status, d.Price = strings.TrimSpace(in.Name), in.Description, status, in.Price.Round(2)
	d.UpdatedAt = uc.now()
	if err := uc.dishes().Update(ctx, d); err != nil {
		return nil, fmt.Errorf("actualizar plato: %w", err)
	}
	if err := loadDish(ctx, uc.repos, d); err != nil {
		return nil, err
	}
	return toDishResponse(d), nil
}

// DeleteDish devuelve domain.ErrConflict si el plato tiene ingredientes o aparece en pedidos.
func (uc *UseCase) DeleteDish(ctx context.Context, id int64) error {
	return uc.dishes().Delete(ctx, id)
}
