package repository

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
)

// PartRepository define el puerto de persistencia para Part (DIP).
// Semántica del almacén:
//   - Create asigna el ID en el insert.
//   - List devuelve todas las filas en orden de inserción (id).
//   - Update sobreescribe qty/cost/price; si el id no existe es un no-op silencioso.
//   - AdjustQuantity aplica qty = qty - delta sin piso (puede quedar negativo).
type PartRepository interface {
	Create(part *entity.Part) error
	GetByID(id int64) (*entity.Part, error)
	List() ([]*entity.Part, error)
	Update(id int64, qty int64, cost, price decimal.Decimal) error
	AdjustQuantity(id int64, delta int64) error
}
