package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credifarma/cupos-api/internal/application/auth"
	"github.com/credifarma/cupos-api/internal/application/dto"
	"github.com/credifarma/cupos-api/internal/domain"
	"github.com/credifarma/cupos-api/internal/domain/entity"
	"github.com/credifarma/cupos-api/pkg/jwt"
)

type fakeUsuarioRepo struct {
	usuarios map[string]*entity.Usuario // por email
}

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	if _, ok := f.usuarios[u.Email]; ok {
		return domain.ErrDuplicate
	}
	clone := *u
	f.usuarios[u.Email] = &clone
	return nil
}

func (f *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	u, ok := f.usuarios[email]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func setupAuthUC() (*auth.AuthUseCase, *fakeUsuarioRepo) {
	repo := &fakeUsuarioRepo{usuarios: map[string]*entity.Usuario{}}
	cfg := auth.JWTConfig{Secret: "secreto-de-pruebas", ExpMinutes: 15, Issuer: "cupos-api"}
	return auth.NewAuthUseCase(repo, cfg), repo
}

func TestRegister_AnalistaPorDefecto(t *testing.T) {
	uc, repo := setupAuthUC()

	user, err := uc.Register(dto.RegisterRequest{Email: "ana@credifarma.co", Password: "s3creta"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolAnalista, user.Rol)
	assert.Equal(t, "ana@credifarma.co", user.Nombre, "nombre cae al email si no viene")

	guardado := repo.usuarios["ana@credifarma.co"]
	require.NotNil(t, guardado)
	assert.NotEqual(t, "s3creta", guardado.PasswordHash, "nunca se guarda en claro")
	assert.True(t, guardado.Activo)
}

func TestRegister_Validaciones(t *testing.T) {
	uc, _ := setupAuthUC()

	_, err := uc.Register(dto.RegisterRequest{Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.co"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := setupAuthUC()

	in := dto.RegisterRequest{Email: "ana@credifarma.co", Password: "s3creta"}
	_, err := uc.Register(in)
	require.NoError(t, err)
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_TokenConRol(t *testing.T) {
	uc, _ := setupAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "admin@credifarma.co", Password: "s3creta", Rol: entity.RolAdmin})
	require.NoError(t, err)

	resp, err := uc.Login(dto.LoginRequest{Email: "admin@credifarma.co", Password: "s3creta"})
	require.NoError(t, err)
	assert.Equal(t, entity.RolAdmin, resp.User.Rol)

	_, email, rol, err := jwt.Parse("secreto-de-pruebas", resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@credifarma.co", email)
	assert.Equal(t, entity.RolAdmin, rol)
}

func TestLogin_CredencialesYEstado(t *testing.T) {
	uc, repo := setupAuthUC()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@credifarma.co", Password: "s3creta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@credifarma.co", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@credifarma.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	repo.usuarios["ana@credifarma.co"].Activo = false
	_, err = uc.Login(dto.LoginRequest{Email: "ana@credifarma.co", Password: "s3creta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
