package mantenimiento

import (
	"time"

	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// DepuracionUseCase elimina órdenes AUTORIZADA cuya última autorización es
// más vieja que el umbral de retención. Se invoca bajo demanda desde un
// endpoint de administración; no hay tareas en segundo plano.
type DepuracionUseCase struct {
	ordenRepo     repository.OrdenRepository
	retencionDias int
}

// NewDepuracionUseCase construye el caso de uso con el umbral configurado.
func NewDepuracionUseCase(ordenRepo repository.OrdenRepository, retencionDias int) *DepuracionUseCase {
	return &DepuracionUseCase{ordenRepo: ordenRepo, retencionDias: retencionDias}
}

// PurgarOrdenesAutorizadas elimina lo que quedó fuera de retención y devuelve
// el número de órdenes eliminadas. dias <= 0 usa el umbral configurado.
func (uc *DepuracionUseCase) PurgarOrdenesAutorizadas(dias int) (int64, error) {
	if dias <= 0 {
		dias = uc.retencionDias
	}
	if dias <= 0 {
		return 0, domain.ErrInvalidInput
	}
	corte := time.Now().AddDate(0, 0, -dias)
	return uc.ordenRepo.DeleteAutorizadasAntesDe(corte)
}
