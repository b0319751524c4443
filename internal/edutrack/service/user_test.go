package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencampus/edutrack/internal/edutrack/domain"
	"github.com/opencampus/edutrack/internal/edutrack/service"
	"github.com/opencampus/edutrack/internal/edutrack/store"
	"github.com/opencampus/edutrack/internal/edutrack/store/drivers/sqlite"
	"github.com/opencampus/edutrack/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "edutrack-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "edutrack-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	users := &service.UserService{Store: newTestStore(t)}

	registered, err := users.Register(ctx, "A", "a@x.com", "pw", domain.RoleStudent)
	require.NoError(t, err)
	require.NotEmpty(t, registered.ID)
	require.NotEqual(t, "pw", registered.PasswordHash, "plaintext must never be stored")

	loggedIn, err := users.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)
	require.Equal(t, registered.ID, loggedIn.ID)
	require.Equal(t, domain.RoleStudent, loggedIn.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	users := &service.UserService{Store: newTestStore(t)}

	_, err := users.Register(ctx, "A", "a@x.com", "pw", domain.RoleStudent)
	require.NoError(t, err)

	_, err = users.Login(ctx, "a@x.com", "nope")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIsIndistinguishable(t *testing.T) {
	ctx := context.Background()
	users := &service.UserService{Store: newTestStore(t)}

	_, err := users.Register(ctx, "A", "a@x.com", "pw", domain.RoleStudent)
	require.NoError(t, err)

	wrongPassword := users
	_, errUnknown := wrongPassword.Login(ctx, "nobody@x.com", "pw")
	_, errWrongPw := wrongPassword.Login(ctx, "a@x.com", "bad")

	// Same sentinel either way, so callers can't probe which emails exist.
	require.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPw, service.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	users := &service.UserService{Store: newTestStore(t)}

	_, err := users.Register(ctx, "A", "a@x.com", "pw", domain.RoleStudent)
	require.NoError(t, err)

	_, err = users.Register(ctx, "B", "a@x.com", "other", domain.RoleFaculty)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestRegisterStoresArbitraryRole(t *testing.T) {
	ctx := context.Background()
	users := &service.UserService{Store: newTestStore(t)}

	// No role validation happens at registration; unknown roles simply
	// match no route gate.
	registered, err := users.Register(ctx, "X", "x@x.com", "pw", domain.Role("registrar"))
	require.NoError(t, err)
	require.Equal(t, domain.Role("registrar"), registered.Role)
}
