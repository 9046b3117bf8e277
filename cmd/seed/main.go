// seed carga un catálogo de demostración en la tabla parts (telas, herrajes,
// cremalleras) para probar la aplicación sin datos reales.
//
// Uso: go run ./cmd/seed
// Usa la misma configuración de BD que cmd/api (DATABASE_URL o DB_*).
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bagmaker-pro/internal/domain/entity"
	"github.com/tu-usuario/bagmaker-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/bagmaker-pro/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "esquema de la base: %v\n", err)
		os.Exit(1)
	}

	repo := postgres.NewPartRepository(pool)
	for _, part := range demoParts() {
		p := part
		if err := repo.Create(&p); err != nil {
			fmt.Fprintf(os.Stderr, "insertar %s: %v\n", p.SKU, err)
			os.Exit(1)
		}
		fmt.Printf("insertado %s (%s) id=%d\n", p.SKU, p.Name, p.ID)
	}
	fmt.Printf("%d piezas cargadas\n", len(demoParts()))
}

func demoParts() []entity.Part {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []entity.Part{
		{SKU: "FAB-001", Name: "Waxed Canvas 12oz", Category: entity.CategoryFabric, Color: entity.ColorNatural, Qty: 14, Cost: price("8.50"), Price: price("15.00")},
		{SKU: "FAB-002", Name: "Cork Fabric", Category: entity.CategoryFabric, Color: entity.ColorBlack, Qty: 6, Cost: price("11.25"), Price: price("19.50")},
		{SKU: "HW-101", Name: "Swivel Hook 1in", Category: entity.CategoryHardware, Color: entity.ColorAntiqueBrass, Qty: 40, Cost: price("0.85"), Price: price("2.25")},
		{SKU: "HW-102", Name: "D-Ring 1in", Category: entity.CategoryHardware, Color: entity.ColorNickel, Qty: 3, Cost: price("0.40"), Price: price("1.10")},
		{SKU: "ZIP-201", Name: "Zipper #5 Coil 18in", Category: entity.CategoryZipper, Color: entity.ColorRainbow, Qty: 22, Cost: price("1.60"), Price: price("3.75")},
		{SKU: "INT-301", Name: "Fusible Foam", Category: entity.CategoryInterfacing, Qty: 9, Cost: price("4.10"), Price: price("7.80")},
		{SKU: "THR-401", Name: "Bonded Nylon Thread", Category: entity.CategoryThread, Color: entity.ColorGold, Qty: 5, Cost: price("2.95"), Price: price("5.50")},
		{SKU: "WEB-501", Name: "Cotton Webbing 1.5in", Category: entity.CategoryWebbing, Color: entity.ColorBlack, Qty: 30, Cost: price("1.20"), Price: price("2.90")},
	}
}
