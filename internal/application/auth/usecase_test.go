package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/doctorcel/doctorcel-api/internal/application/auth"
	"github.com/doctorcel/doctorcel-api/internal/application/dto"
	"github.com/doctorcel/doctorcel-api/internal/domain"
	"github.com/doctorcel/doctorcel-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.byID[id], nil }
func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}
func (r *fakeUserRepo) Count() (int, error) { return len(r.byID), nil }
func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func newAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-prueba",
		ExpMinutes: 60,
		Issuer:     "doctorcel-test",
	})
}

// El primer usuario del sistema queda como ADMIN aunque pida otro rol.
func TestCreateUser_PrimerUsuarioEsAdmin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	user, err := uc.CreateUser(dto.CreateUserRequest{
		Email:    "dueña@doctorcel.co",
		Password: "clave-segura",
		Role:     entity.RoleSeller,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.Active)
}

// Los siguientes usuarios conservan el rol pedido; sin rol queda SELLER.
func TestCreateUser_RolPorDefectoYExplicito(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "x12345678"})
	require.NoError(t, err)

	seller, err := uc.CreateUser(dto.CreateUserRequest{Email: "venta@doctorcel.co", Password: "x12345678"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleSeller, seller.Role)

	tech, err := uc.CreateUser(dto.CreateUserRequest{
		Email: "taller@doctorcel.co", Password: "x12345678", Role: entity.RoleTechnician,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, tech.Role)
}

func TestCreateUser_RolInvalido(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.CreateUser(dto.CreateUserRequest{
		Email: "x@doctorcel.co", Password: "x12345678", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "x12345678"})
	require.NoError(t, err)
	_, err = uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// El password se guarda hasheado con bcrypt, nunca en claro.
func TestCreateUser_PasswordHasheado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)

	user, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "clave-secreta"})
	require.NoError(t, err)

	stored := repo.byID[user.ID]
	assert.NotEqual(t, "clave-secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("clave-secreta")))
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "clave-secreta"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@doctorcel.co", Password: "clave-secreta"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "clave-secreta"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@doctorcel.co", Password: "clave-mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioNoExiste(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@doctorcel.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Sin JWT_SECRET el login falla cerrado: nunca se emite un token sin firma.
func TestLogin_SinSecretFallaCerrado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "", ExpMinutes: 60})
	_, err := newAuthUC(repo).CreateUser(dto.CreateUserRequest{
		Email: "admin@doctorcel.co", Password: "clave-secreta",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "admin@doctorcel.co", Password: "clave-secreta"})
	assert.ErrorIs(t, err, domain.ErrMissingSecret)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	user, err := uc.CreateUser(dto.CreateUserRequest{Email: "ex@doctorcel.co", Password: "clave-secreta"})
	require.NoError(t, err)
	repo.byID[user.ID].Active = false

	_, err = uc.Login(dto.LoginRequest{Email: "ex@doctorcel.co", Password: "clave-secreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Tras cambiar la contraseña, la nueva funciona y la vieja no.
func TestUpdatePassword_Rota(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUC(repo)
	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin@doctorcel.co", Password: "clave-vieja"})
	require.NoError(t, err)

	require.NoError(t, uc.UpdatePassword(dto.UpdatePasswordRequest{
		Email: "admin@doctorcel.co", NewPassword: "clave-nueva",
	}))

	_, err = uc.Login(dto.LoginRequest{Email: "admin@doctorcel.co", Password: "clave-vieja"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(dto.LoginRequest{Email: "admin@doctorcel.co", Password: "clave-nueva"})
	assert.NoError(t, err)
}

func TestUpdatePassword_UsuarioNoExiste(t *testing.T) {
	uc := newAuthUC(newFakeUserRepo())

	err := uc.UpdatePassword(dto.UpdatePasswordRequest{Email: "nadie@doctorcel.co", NewPassword: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
