package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/repository"
)

var _ repository.PartRepository = (*PartRepo)(nil)

// PartRepo implementación del puerto PartRepository sobre PostgreSQL (usable con pool o tx).
type PartRepo struct {
	q Querier
}

// NewPartRepository construye el adaptador de persistencia para piezas. Pasar pool o tx (Querier).
func NewPartRepository(q Querier) *PartRepo {
	return &PartRepo{q: q}
}

// Create inserta una nueva pieza y asigna el ID (BIGSERIAL). No chequea unicidad de SKU.
func (r *PartRepo) Create(part *entity.Part) error {
	query := `
		INSERT INTO parts (part_number, name, category, color, qty, cost, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		part.SKU, part.Name, string(part.Category), string(part.Color),
		part.Qty, part.Cost, part.Price,
	).Scan(&part.ID)
	if err != nil {
		return fmt.Errorf("insert part: %w", err)
	}
	return nil
}

// GetByID obtiene una pieza por ID. Devuelve (nil, nil) si no existe.
func (r *PartRepo) GetByID(id int64) (*entity.Part, error) {
	query := `
		SELECT id, part_number, name, category, color, qty, cost, price
		FROM parts WHERE id = $1`
	var p entity.Part
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Color, &p.Qty, &p.Cost, &p.Price,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get part: %w", err)
	}
	return &p, nil
}

// List devuelve todas las piezas en orden de inserción (id).
func (r *PartRepo) List() ([]*entity.Part, error) {
	query := `
		SELECT id, part_number, name, category, color, qty, cost, price
		FROM parts ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list parts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Part
	for rows.Next() {
		var p entity.Part
		if err := rows.Scan(&p.ID, &p.SKU, &p.Name, &p.Category, &p.Color, &p.Qty, &p.Cost, &p.Price); err != nil {
			return nil, fmt.Errorf("scan part: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update sobreescribe qty, cost y price. Si el id no existe, 0 filas afectadas: no-op silencioso.
func (r *PartRepo) Update(id int64, qty int64, cost, price decimal.Decimal) error {
	query := `
		UPDATE parts SET qty = $2, cost = $3, price = $4
		WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, qty, cost, price); err != nil {
		return fmt.Errorf("update part: %w", err)
	}
	return nil
}

// AdjustQuantity aplica qty = qty - delta. Sin piso: el resultado puede ser negativo.
func (r *PartRepo) AdjustQuantity(id int64, delta int64) error {
	query := `
		UPDATE parts SET qty = qty - $2
		WHERE id = $1`
	if _, err := r.q.Exec(context.Background(), query, id, delta); err != nil {
		return fmt.Errorf("adjust part qty: %w", err)
	}
	return nil
}
