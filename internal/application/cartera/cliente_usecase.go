package cartera

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/credifarma/cupos-api/internal/application/dto"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/credito"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
	"github.com/credifarma/cupos-api/pkg/nit"
)

// ClienteUseCase casos de uso del libro de cupos: alta, consulta con derivados,
// actualización parcial de límites y listado.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
	ordenRepo   repository.OrdenRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository, ordenRepo repository.OrdenRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo, ordenRepo: ordenRepo}
}

// Create registra un cliente nuevo. El NIT debe ser único y con dígito de
// verificación válido; el cupo sugerido debe ser positivo.
func (uc *ClienteUseCase) Create(in dto.CreateClienteRequest) (*dto.ClienteResponse, error) {
	if in.NIT == "" || in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := nit.Validar(in.NIT); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if !in.CupoSugerido.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	saldo := decimal.Zero
	if in.SaldoActual != nil {
		saldo = *in.SaldoActual
	}
	vencida := decimal.Zero
	if in.CarteraVencida != nil {
		vencida = *in.CarteraVencida
	}
	if saldo.IsNegative() || vencida.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	cliente := &entity.Cliente{
		NIT:            in.NIT,
		Nombre:         in.Nombre,
		CupoSugerido:   in.CupoSugerido,
		SaldoActual:    saldo,
		CarteraVencida: vencida,
		Activo:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.clienteRepo.Create(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// GetView devuelve el cliente con todos los derivados más la suma de
// valor pendiente de sus órdenes abiertas.
func (uc *ClienteUseCase) GetView(nitCliente string) (*dto.ClienteViewResponse, error) {
	cliente, err := uc.clienteRepo.GetByNIT(nitCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil || !cliente.Activo {
		return nil, domain.ErrNotFound
	}

	ordenes, err := uc.ordenRepo.List(repository.OrdenFilter{ClienteNIT: &nitCliente})
	if err != nil {
		return nil, err
	}
	pendiente := decimal.Zero
	for _, o := range ordenes {
		if o.Abierta() {
			pendiente = pendiente.Add(o.ValorPendiente())
		}
	}

	return &dto.ClienteViewResponse{
		ClienteResponse:   *toClienteResponse(cliente),
		OrdenesPendientes: pendiente,
	}, nil
}

// UpdateLimites actualización parcial: solo los campos presentes cambian.
// Los montos, si vienen, deben ser >= 0.
func (uc *ClienteUseCase) UpdateLimites(nitCliente string, in dto.UpdateLimitesRequest) (*dto.ClienteResponse, error) {
	for _, m := range []*decimal.Decimal{in.CupoSugerido, in.SaldoActual, in.CarteraVencida} {
		if m != nil && m.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Nombre != nil && *in.Nombre == "" {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clienteRepo.GetByNIT(nitCliente)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	if in.Nombre != nil {
		cliente.Nombre = *in.Nombre
	}
	if in.CupoSugerido != nil {
		cliente.CupoSugerido = *in.CupoSugerido
	}
	if in.SaldoActual != nil {
		cliente.SaldoActual = *in.SaldoActual
	}
	if in.CarteraVencida != nil {
		cliente.CarteraVencida = *in.CarteraVencida
	}
	cliente.UpdatedAt = time.Now()

	if err := uc.clienteRepo.Update(cliente); err != nil {
		return nil, err
	}
	return toClienteResponse(cliente), nil
}

// List devuelve los clientes activos con derivados, ordenados por severidad
// del estado (SOBREPASADO primero) y luego por saldo descendente.
func (uc *ClienteUseCase) List() ([]*dto.ClienteResponse, error) {
	clientes, err := uc.clienteRepo.ListActivos()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ClienteResponse, 0, len(clientes))
	for _, c := range clientes {
		out = append(out, toClienteResponse(c))
	}
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := credito.Severidad(out[i].Estado), credito.Severidad(out[j].Estado)
		if si != sj {
			return si < sj
		}
		return out[i].SaldoActual.GreaterThan(out[j].SaldoActual)
	})
	return out, nil
}

// Deactivate marca el cliente como inactivo (borrado lógico). Las órdenes y
// movimientos que lo referencian se conservan.
func (uc *ClienteUseCase) Deactivate(nitCliente string) error {
	cliente, err := uc.clienteRepo.GetByNIT(nitCliente)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ErrNotFound
	}
	return uc.clienteRepo.Deactivate(nitCliente)
}

func toClienteResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		NIT:            c.NIT,
		Nombre:         c.Nombre,
		CupoSugerido:   c.CupoSugerido,
		SaldoActual:    c.SaldoActual,
		CarteraVencida: c.CarteraVencida,
		Disponible:     credito.Disponible(c),
		PorcentajeUso:  credito.PorcentajeUso(c),
		Estado:         credito.Estado(c),
		UpdatedAt:      c.UpdatedAt,
	}
}
