package mantenimiento_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credifarma/cupos-api/internal/application/mantenimiento"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// fakeOrdenRepo implementa solo la operación del job de depuración.
type fakeOrdenRepo struct {
	ordenes map[string]*entity.OrdenCompra
}

func (f *fakeOrdenRepo) DeleteAutorizadasAntesDe(corte time.Time) (int64, error) {
	var n int64
	for numero, o := range f.ordenes {
		if o.Estado() != entity.OrdenAutorizada {
			continue
		}
		if o.FechaUltimaAutorizacion != nil && o.FechaUltimaAutorizacion.Before(corte) {
			delete(f.ordenes, numero)
			n++
		}
	}
	return n, nil
}

func (f *fakeOrdenRepo) Create(*entity.OrdenCompra) error { panic("no usado") }
func (f *fakeOrdenRepo) GetByNumero(string) (*entity.OrdenCompra, error) {
	panic("no usado")
}
func (f *fakeOrdenRepo) GetByNumeroForUpdate(string) (*entity.OrdenCompra, error) {
	panic("no usado")
}
func (f *fakeOrdenRepo) List(repository.OrdenFilter) ([]*entity.OrdenCompra, error) {
	panic("no usado")
}
func (f *fakeOrdenRepo) UpdateAutorizado(*entity.OrdenCompra) error { panic("no usado") }

var _ repository.OrdenRepository = (*fakeOrdenRepo)(nil)

func orden(numero string, autorizado int64, hace time.Duration) *entity.OrdenCompra {
	fecha := time.Now().Add(-hace)
	o := &entity.OrdenCompra{
		NumeroOC:        numero,
		ClienteNIT:      "900746052",
		ValorTotal:      decimal.NewFromInt(100),
		ValorAutorizado: decimal.NewFromInt(autorizado),
		Tipo:            entity.OrdenSuelta,
	}
	if autorizado > 0 {
		o.FechaUltimaAutorizacion = &fecha
	}
	return o
}

func TestPurgarOrdenesAutorizadas(t *testing.T) {
	repo := &fakeOrdenRepo{ordenes: map[string]*entity.OrdenCompra{
		"OC-VIEJA":    orden("OC-VIEJA", 100, 120*24*time.Hour),   // autorizada, fuera de retención
		"OC-RECIENTE": orden("OC-RECIENTE", 100, 10*24*time.Hour), // autorizada, dentro de retención
		"OC-PARCIAL":  orden("OC-PARCIAL", 50, 120*24*time.Hour),  // abierta: nunca se purga
		"OC-NUEVA":    orden("OC-NUEVA", 0, 0),
	}}
	uc := mantenimiento.NewDepuracionUseCase(repo, 90)

	n, err := uc.PurgarOrdenesAutorizadas(0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	_, quedaVieja := repo.ordenes["OC-VIEJA"]
	assert.False(t, quedaVieja)
	assert.Len(t, repo.ordenes, 3, "las abiertas y las recientes sobreviven")

	// Segunda corrida: idempotente.
	n, err = uc.PurgarOrdenesAutorizadas(0)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPurgarOrdenesAutorizadas_DiasExplicito(t *testing.T) {
	repo := &fakeOrdenRepo{ordenes: map[string]*entity.OrdenCompra{
		"OC-1": orden("OC-1", 100, 30*24*time.Hour),
	}}
	uc := mantenimiento.NewDepuracionUseCase(repo, 90)

	// Con el umbral configurado (90 días) no purga; con 7 días explícitos sí.
	n, err := uc.PurgarOrdenesAutorizadas(0)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = uc.PurgarOrdenesAutorizadas(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPurgarOrdenesAutorizadas_SinUmbral(t *testing.T) {
	uc := mantenimiento.NewDepuracionUseCase(&fakeOrdenRepo{}, 0)
	_, err := uc.PurgarOrdenesAutorizadas(0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
