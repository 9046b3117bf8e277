package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/tu-usuario/bagmaker-pro/internal/application/dto"
	"github.com/tu-usuario/bagmaker-pro/internal/domain"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/repository"
)

// PartUseCase casos de uso del inventario: alta, listado, edición/restock,
// reporte de stock bajo y export CSV. La deducción de stock vive en pulllist.
type PartUseCase struct {
	repo              repository.PartRepository
	lowStockThreshold int64
}

// NewPartUseCase construye el caso de uso.
func NewPartUseCase(repo repository.PartRepository, lowStockThreshold int64) *PartUseCase {
	return &PartUseCase{repo: repo, lowStockThreshold: lowStockThreshold}
}

// Create da de alta una pieza. No chequea unicidad de SKU: los duplicados se
// aceptan en silencio (comportamiento observado, pendiente de producto).
func (uc *PartUseCase) Create(in dto.CreatePartRequest) (*dto.PartResponse, error) {
	category, ok := entity.ParseCategory(in.Category)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	color, ok := entity.ParseColor(in.Color)
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	part := &entity.Part{
		SKU:      in.SKU,
		Name:     in.Name,
		Category: category,
		Color:    color,
		Qty:      in.Qty,
		Cost:     in.Cost,
		Price:    in.Price,
	}
	if err := uc.repo.Create(part); err != nil {
		return nil, err
	}
	return uc.toPartResponse(part), nil
}

// GetByID obtiene una pieza por ID. Devuelve (nil, nil) si no existe.
func (uc *PartUseCase) GetByID(id int64) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	return uc.toPartResponse(part), nil
}

// List devuelve el inventario completo en orden de inserción.
func (uc *PartUseCase) List() (*dto.PartListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *uc.toPartResponse(p))
	}
	return &dto.PartListResponse{Items: items}, nil
}

// Update sobreescribe qty/cost/price de una pieza existente. Devuelve
// (nil, nil) si el id no existe; el almacén en sí es un no-op silencioso,
// la existencia se verifica aquí para que el borde HTTP pueda responder 404.
func (uc *PartUseCase) Update(id int64, in dto.UpdatePartRequest) (*dto.PartResponse, error) {
	part, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, nil
	}
	if err := uc.repo.Update(id, in.Qty, in.Cost, in.Price); err != nil {
		return nil, err
	}
	part.Qty = in.Qty
	part.Cost = in.Cost
	part.Price = in.Price
	return uc.toPartResponse(part), nil
}

// LowStock devuelve las piezas con qty <= umbral, para el aviso de reposición.
func (uc *PartUseCase) LowStock() (*dto.PartListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PartResponse, 0)
	for _, p := range list {
		if p.Qty <= uc.lowStockThreshold {
			items = append(items, *uc.toPartResponse(p))
		}
	}
	return &dto.PartListResponse{Items: items}, nil
}

// ExportCSV serializa la tabla completa como CSV plano (mismo orden de
// columnas que la tabla) para descarga.
func (uc *PartUseCase) ExportCSV() ([]byte, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "part_number", "name", "category", "color", "qty", "cost", "price"}); err != nil {
		return nil, fmt.Errorf("escribir cabecera CSV: %w", err)
	}
	for _, p := range list {
		record := []string{
			strconv.FormatInt(p.ID, 10),
			p.SKU,
			p.Name,
			string(p.Category),
			string(p.Color),
			strconv.FormatInt(p.Qty, 10),
			p.Cost.StringFixed(2),
			p.Price.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("escribir fila CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("volcar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func (uc *PartUseCase) toPartResponse(p *entity.Part) *dto.PartResponse {
	return &dto.PartResponse{
		ID:       p.ID,
		SKU:      p.SKU,
		Name:     p.Name,
		Category: string(p.Category),
		Color:    string(p.Color),
		Qty:      p.Qty,
		Cost:     p.Cost,
		Price:    p.Price,
		LowStock: p.Qty <= uc.lowStockThreshold,
	}
}
