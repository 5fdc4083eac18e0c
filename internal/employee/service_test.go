package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	byEmail map[string]*Employee
	created []*Employee
}

func (f *fakeRepository) Create(_ context.Context, e *Employee) error {
	if _, ok := f.byEmail[e.Email]; ok {
		return ErrEmailAlreadyUsed
	}
	e.ID = "emp-" + e.Email
	if f.byEmail == nil {
		f.byEmail = map[string]*Employee{}
	}
	f.byEmail[e.Email] = e
	f.created = append(f.created, e)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Employee, error) {
	for _, e := range f.byEmail {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*Employee, error) {
	if e, ok := f.byEmail[email]; ok {
		return e, nil
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) List(context.Context, Filter) ([]*Employee, int, error) {
	return nil, 0, nil
}

func (f *fakeRepository) UpdateLastLogin(_ context.Context, id string, _ time.Time) error {
	_, err := f.GetByID(context.Background(), id)
	return err
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hash:" + plain, nil }

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hash:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func TestCreateNormalizesAndHashes(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, fakeHasher{})

	e, err := svc.Create(context.Background(), CreateRequest{
		Email:    "  Ivanov@Example.COM ",
		Password: "correct horse",
		Name:     " Ivan ",
		Surname:  "Ivanov",
	})
	require.NoError(t, err)

	assert.Equal(t, "ivanov@example.com", e.Email)
	assert.Equal(t, "hash:correct horse", e.PasswordHash)
	assert.Equal(t, "Ivan", e.Name)
	assert.True(t, e.IsActive)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(&fakeRepository{}, fakeHasher{})

	_, err := svc.Create(context.Background(), CreateRequest{Password: "long enough"})
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Create(context.Background(), CreateRequest{Email: "a@b.c", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, fakeHasher{})

	_, err := svc.Create(context.Background(), CreateRequest{
		Email:    "ivanov@example.com",
		Password: "correct horse",
		Name:     "Ivan",
		Surname:  "Ivanov",
	})
	require.NoError(t, err)

	e, err := svc.Authenticate(context.Background(), "Ivanov@example.com", "correct horse")
	require.NoError(t, err)
	require.NotNil(t, e.LastLoginAt)

	_, err = svc.Authenticate(context.Background(), "ivanov@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown accounts look identical to bad passwords.
	_, err = svc.Authenticate(context.Background(), "ghost@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateInactive(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, fakeHasher{})

	e, err := svc.Create(context.Background(), CreateRequest{
		Email:    "ivanov@example.com",
		Password: "correct horse",
		Name:     "Ivan",
		Surname:  "Ivanov",
	})
	require.NoError(t, err)
	e.IsActive = false

	_, err = svc.Authenticate(context.Background(), "ivanov@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInactiveEmployee)
}

func TestFullName(t *testing.T) {
	e := &Employee{Name: "Ivan", Surname: "Ivanov", Patronymic: "Ivanovich"}
	assert.Equal(t, "Ivanov Ivan Ivanovich", e.FullName())

	e = &Employee{Name: "Ivan", Surname: "Ivanov"}
	assert.Equal(t, "Ivanov Ivan", e.FullName())
}
