package usecase

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// TxRunner puerto para ejecutar la secuencia lookup → chequeo → escritura
// como unidad atómica dentro de una transacción del store. Dos mutaciones
// concurrentes sobre la misma entidad no deben observar ambas un estado que
// la otra invalida (por ejemplo, dos creaciones con el mismo nombre pasando
// ambas el chequeo de duplicados).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
		skuRepo repository.SKURepository,
	) error) error
}
