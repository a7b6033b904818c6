package service

import (
	"context"
	"testing"

	"github.com/sittha/dorm-booking/internal/models"
	"github.com/sittha/dorm-booking/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	findByIDFn    func(ctx context.Context, id uint) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
	existsFn      func(ctx context.Context, email, studentID string) (bool, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}
func (m *mockUserRepo) ExistsByEmailOrStudentID(ctx context.Context, email, studentID string) (bool, error) {
	return m.existsFn(ctx, email, studentID)
}

func registerInput() RegisterInput {
	return RegisterInput{
		StudentID: "S1234567",
		Name:      "Somchai",
		Email:     "somchai@example.com",
		Phone:     "081-111-2222",
		Password:  "secret1",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	var created *models.User
	repo := &mockUserRepo{
		existsFn: func(ctx context.Context, email, studentID string) (bool, error) { return false, nil },
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 2
			created = user
			return nil
		},
	}

	svc := NewAuthService(repo, "test-secret")
	user, err := svc.Register(context.Background(), registerInput())

	require.NoError(t, err)
	assert.Equal(t, uint(2), user.ID)
	assert.Equal(t, models.RoleStudent, user.Role)
	require.NotNil(t, created)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
}

func TestRegister_DuplicateUser(t *testing.T) {
	repo := &mockUserRepo{
		existsFn: func(ctx context.Context, email, studentID string) (bool, error) { return true, nil },
	}

	svc := NewAuthService(repo, "test-secret")
	user, err := svc.Register(context.Background(), registerInput())

	assert.ErrorIs(t, err, ErrUserExists)
	assert.Nil(t, user)
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{
				ID: 2, Role: models.RoleStudent, Name: "Somchai",
				Email: email, PasswordHash: string(hash),
			}, nil
		},
	}

	svc := NewAuthService(repo, "test-secret")
	token, user, err := svc.Login(context.Background(), "somchai@example.com", "secret1")

	require.NoError(t, err)
	assert.Equal(t, uint(2), user.ID)

	claims, err := auth.ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Somchai", claims.Name)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 2, Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := NewAuthService(repo, "test-secret")
	_, _, err = svc.Login(context.Background(), "somchai@example.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := &mockUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return nil, assert.AnError
		},
	}

	svc := NewAuthService(repo, "test-secret")
	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret1")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
