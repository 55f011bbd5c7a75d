package repository

import "github.com/credifarma/cupos-api/internal/domain/entity"

// UsuarioRepository define el puerto de persistencia para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	FindByEmail(email string) (*entity.Usuario, error)
}
