package cartera_test

import (
	"context"
	"time"

	"github.com/credifarma/cupos-api/internal/application/cartera"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// Fakes en memoria para los casos de uso de cartera. El fake de TxRunner
// replica la semántica de la transacción real: si fn falla, el estado vuelve
// al snapshot previo.

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
	failNext error
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: map[string]*entity.Cliente{}}
}

func (f *fakeClienteRepo) Create(c *entity.Cliente) error {
	if _, ok := f.clientes[c.NIT]; ok {
		return domain.ErrDuplicate
	}
	clone := *c
	f.clientes[c.NIT] = &clone
	return nil
}

func (f *fakeClienteRepo) GetByNIT(nit string) (*entity.Cliente, error) {
	c, ok := f.clientes[nit]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeClienteRepo) GetByNITForUpdate(nit string) (*entity.Cliente, error) {
	return f.GetByNIT(nit)
}

func (f *fakeClienteRepo) ListActivos() ([]*entity.Cliente, error) {
	var out []*entity.Cliente
	for _, c := range f.clientes {
		if c.Activo {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeClienteRepo) Update(c *entity.Cliente) error {
	clone := *c
	f.clientes[c.NIT] = &clone
	return nil
}

func (f *fakeClienteRepo) UpdateSaldo(c *entity.Cliente) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	return f.Update(c)
}

func (f *fakeClienteRepo) Deactivate(nit string) error {
	if c, ok := f.clientes[nit]; ok {
		c.Activo = false
	}
	return nil
}

func (f *fakeClienteRepo) snapshot() map[string]*entity.Cliente {
	snap := map[string]*entity.Cliente{}
	for k, v := range f.clientes {
		clone := *v
		snap[k] = &clone
	}
	return snap
}

type fakeMovRepo struct {
	movs     []*entity.Movimiento
	failNext error
}

func (f *fakeMovRepo) Create(m *entity.Movimiento) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	clone := *m
	f.movs = append(f.movs, &clone)
	return nil
}

func (f *fakeMovRepo) ListByCliente(nit string, limit, offset int) ([]*entity.Movimiento, error) {
	var all []*entity.Movimiento
	for i := len(f.movs) - 1; i >= 0; i-- {
		if f.movs[i].ClienteNIT == nit {
			clone := *f.movs[i]
			all = append(all, &clone)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

type fakeCarteraTx struct {
	clientes *fakeClienteRepo
	movs     *fakeMovRepo
}

func (t *fakeCarteraTx) Run(_ context.Context, fn func(
	clienteRepo repository.ClienteRepository,
	movRepo repository.MovimientoRepository,
) error) error {
	clientesSnap := t.clientes.snapshot()
	movsSnap := append([]*entity.Movimiento(nil), t.movs.movs...)
	if err := fn(t.clientes, t.movs); err != nil {
		t.clientes.clientes = clientesSnap
		t.movs.movs = movsSnap
		return err
	}
	return nil
}

var _ cartera.TxRunner = (*fakeCarteraTx)(nil)

type fakeOrdenRepoCartera struct {
	ordenes []*entity.OrdenCompra
}

func (f *fakeOrdenRepoCartera) Create(o *entity.OrdenCompra) error { panic("no usado") }
func (f *fakeOrdenRepoCartera) GetByNumero(string) (*entity.OrdenCompra, error) {
	panic("no usado")
}
func (f *fakeOrdenRepoCartera) GetByNumeroForUpdate(string) (*entity.OrdenCompra, error) {
	panic("no usado")
}
func (f *fakeOrdenRepoCartera) UpdateAutorizado(*entity.OrdenCompra) error { panic("no usado") }
func (f *fakeOrdenRepoCartera) DeleteAutorizadasAntesDe(time.Time) (int64, error) {
	panic("no usado")
}

func (f *fakeOrdenRepoCartera) List(filter repository.OrdenFilter) ([]*entity.OrdenCompra, error) {
	var out []*entity.OrdenCompra
	for _, o := range f.ordenes {
		if filter.ClienteNIT != nil && o.ClienteNIT != *filter.ClienteNIT {
			continue
		}
		clone := *o
		out = append(out, &clone)
	}
	return out, nil
}
