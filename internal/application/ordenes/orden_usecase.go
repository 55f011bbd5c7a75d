package ordenes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/credifarma/cupos-api/internal/application/dto"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/internal/domain/repository"
)

// OrdenUseCase alta y consulta de órdenes de compra.
type OrdenUseCase struct {
	ordenRepo   repository.OrdenRepository
	clienteRepo repository.ClienteRepository
	autRepo     repository.AutorizacionRepository
}

// NewOrdenUseCase construye el caso de uso.
func NewOrdenUseCase(ordenRepo repository.OrdenRepository, clienteRepo repository.ClienteRepository, autRepo repository.AutorizacionRepository) *OrdenUseCase {
	return &OrdenUseCase{ordenRepo: ordenRepo, clienteRepo: clienteRepo, autRepo: autRepo}
}

// Create registra una orden nueva en estado PENDIENTE.
func (uc *OrdenUseCase) Create(in dto.CreateOrdenRequest) (*dto.OrdenResponse, error) {
	if in.NumeroOC == "" || in.ClienteNIT == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.ValorTotal.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.Tipo != entity.OrdenSuelta && in.Tipo != entity.OrdenCupoNuevo {
		return nil, domain.ErrInvalidInput
	}

	cliente, err := uc.clienteRepo.GetByNIT(in.ClienteNIT)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	orden := &entity.OrdenCompra{
		NumeroOC:        in.NumeroOC,
		ClienteNIT:      in.ClienteNIT,
		ValorTotal:      in.ValorTotal,
		ValorAutorizado: decimal.Zero,
		Tipo:            in.Tipo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.ordenRepo.Create(orden); err != nil {
		return nil, err
	}
	return toOrdenResponse(orden), nil
}

// Get devuelve una orden por número con sus derivados.
func (uc *OrdenUseCase) Get(numeroOC string) (*dto.OrdenResponse, error) {
	orden, err := uc.ordenRepo.GetByNumero(numeroOC)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	return toOrdenResponse(orden), nil
}

// List devuelve las órdenes que cumplen todos los filtros presentes.
func (uc *OrdenUseCase) List(in dto.ListOrdenesRequest) ([]*dto.OrdenResponse, error) {
	filter := repository.OrdenFilter{}
	if in.Cliente != "" {
		filter.ClienteNIT = &in.Cliente
	}
	if in.Estado != "" {
		filter.Estado = &in.Estado
	}
	if in.Tipo != "" {
		filter.Tipo = &in.Tipo
	}
	list, err := uc.ordenRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.OrdenResponse, 0, len(list))
	for _, o := range list {
		out = append(out, toOrdenResponse(o))
	}
	return out, nil
}

// ListAutorizaciones historial de eventos de autorización de una orden.
func (uc *OrdenUseCase) ListAutorizaciones(numeroOC string) ([]*dto.AutorizacionResponse, error) {
	orden, err := uc.ordenRepo.GetByNumero(numeroOC)
	if err != nil {
		return nil, err
	}
	if orden == nil {
		return nil, domain.ErrNotFound
	}
	events, err := uc.autRepo.ListByOrden(numeroOC)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AutorizacionResponse, 0, len(events))
	for _, a := range events {
		out = append(out, &dto.AutorizacionResponse{
			ID:                a.ID,
			NumeroOC:          a.NumeroOC,
			ValorAutorizado:   a.ValorAutorizado,
			FechaAutorizacion: a.FechaAutorizacion,
			Comentario:        a.Comentario,
			Usuario:           a.Usuario,
		})
	}
	return out, nil
}

func toOrdenResponse(o *entity.OrdenCompra) *dto.OrdenResponse {
	return &dto.OrdenResponse{
		NumeroOC:                o.NumeroOC,
		ClienteNIT:              o.ClienteNIT,
		ValorTotal:              o.ValorTotal,
		ValorAutorizado:         o.ValorAutorizado,
		ValorPendiente:          o.ValorPendiente(),
		Estado:                  o.Estado(),
		Tipo:                    o.Tipo,
		FechaUltimaAutorizacion: o.FechaUltimaAutorizacion,
		CreatedAt:               o.CreatedAt,
	}
}
