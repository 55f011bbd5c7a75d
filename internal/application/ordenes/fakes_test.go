package ordenes_test

import (
	"context"
	"time"

	"github.com/credifarma/cupos-api/internal/application/ordenes"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de órdenes. El fake de TxRunner
// replica la transacción real: si fn falla, todo vuelve al snapshot previo.

type fakeOrdenRepo struct {
	ordenes  map[string]*entity.OrdenCompra
	failNext error
}

func newFakeOrdenRepo() *fakeOrdenRepo {
	return &fakeOrdenRepo{ordenes: map[string]*entity.OrdenCompra{}}
}

func (f *fakeOrdenRepo) Create(o *entity.OrdenCompra) error {
	if _, ok := f.ordenes[o.NumeroOC]; ok {
		return domain.ErrDuplicate
	}
	clone := *o
	f.ordenes[o.NumeroOC] = &clone
	return nil
}

func (f *fakeOrdenRepo) GetByNumero(numeroOC string) (*entity.OrdenCompra, error) {
	o, ok := f.ordenes[numeroOC]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (f *fakeOrdenRepo) GetByNumeroForUpdate(numeroOC string) (*entity.OrdenCompra, error) {
	return f.GetByNumero(numeroOC)
}

func (f *fakeOrdenRepo) List(filter repository.OrdenFilter) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, o := range f.ordenes {
		if filter.ClienteNIT != nil && o.ClienteNIT != *filter.ClienteNIT {
			continue
		}
		if filter.Estado != nil && o.Estado() != *filter.Estado {
			continue
		}
		if filter.Tipo != nil && o.Tipo != *filter.Tipo {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeOrdenRepo) UpdateAutorizado(o *entity.OrdenCompra) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	clone := *o
	f.ordenes[o.NumeroOC] = &clone
	return nil
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

func (f *fakeOrdenRepo) snapshot() map[string]*entity.OrdenCompra {
	snap := map[string]*entity.OrdenCompra{}
	for k, v := range f.ordenes {
		clone := *v
		snap[k] = &clone
	}
	return snap
}

type fakeAutRepo struct {
	auts     []*entity.Autorizacion
	failNext error
}

func (f *fakeAutRepo) Create(a *entity.Autorizacion) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	clone := *a
	f.auts = append(f.auts, &clone)
	return nil
}

func (f *fakeAutRepo) ListByOrden(numeroOC string) ([]*entity.Autorizacion, error) {
	var out []*entity.Autorizacion
	for _, a := range f.auts {
		if a.NumeroOC == numeroOC {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

type fakeOrdenTx struct {
	ordenes *fakeOrdenRepo
	auts    *fakeAutRepo
}

func (t *fakeOrdenTx) Run(_ context.Context, fn func(
	ordenRepo repository.OrdenRepository,
	autRepo repository.AutorizacionRepository,
) error) error {
	ordenesSnap := t.ordenes.snapshot()
	autsSnap := append([]*entity.Autorizacion(nil), t.auts.auts...)
	if err := fn(t.ordenes, t.auts); err != nil {
		t.ordenes.ordenes = ordenesSnap
		t.auts.auts = autsSnap
		return err
	}
	return nil
}

var _ ordenes.TxRunner = (*fakeOrdenTx)(nil)

// fakeClienteRepoOrdenes solo necesita GetByNIT para validar la existencia
// del cliente al crear órdenes.
type fakeClienteRepoOrdenes struct {
	clientes map[string]*entity.Cliente
}

func (f *fakeClienteRepoOrdenes) GetByNIT(nit string) (*entity.Cliente, error) {
	c, ok := f.clientes[nit]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeClienteRepoOrdenes) Create(*entity.Cliente) error  { panic("no usado") }
func (f *fakeClienteRepoOrdenes) GetByNITForUpdate(string) (*entity.Cliente, error) {
	panic("no usado")
}
func (f *fakeClienteRepoOrdenes) ListActivos() ([]*entity.Cliente, error) { panic("no usado") }
func (f *fakeClienteRepoOrdenes) Update(*entity.Cliente) error            { panic("no usado") }
func (f *fakeClienteRepoOrdenes) UpdateSaldo(*entity.Cliente) error       { panic("no usado") }
func (f *fakeClienteRepoOrdenes) Deactivate(string) error                 { panic("no usado") }

var _ repository.ClienteRepository = (*fakeClienteRepoOrdenes)(nil)
