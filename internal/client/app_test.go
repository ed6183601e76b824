package client

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/mock"
	"github.com/MKhiriev/go-users-api/models"
)

func ptr(s string) *string { return &s }

func newTestApp(t *testing.T) (Client, *mock.MockUserAdapter, *bytes.Buffer) {
	t.Helper()

	userAdapter := mock.NewMockUserAdapter(gomock.NewController(t))
	out := new(bytes.Buffer)
	return NewApp(userAdapter, out, logger.Nop()), userAdapter, out
}

func TestRun_Create(t *testing.T) {
	app, userAdapter, out := newTestApp(t)
	ctx := context.Background()

	expected := models.UserFields{Name: ptr("Ana"), Email: ptr("ana@x"), Password: ptr("pw"), CPF: ptr("123"), Number: ptr("555")}
	userAdapter.EXPECT().CreateUser(ctx, expected).Return(models.User{ID: 1, Name: "Ana"}, nil)

	err := app.Run(ctx, []string{"create", "-name", "Ana", "-email", "ana@x", "-password", "pw", "-cpf", "123", "-number", "555"})
	require.NoError(t, err)

	var got models.User
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
}

func TestRun_UpdateSendsOnlyGivenFlags(t *testing.T) {
	app, userAdapter, _ := newTestApp(t)
	ctx := context.Background()

	expected := models.UserFields{Name: ptr("Ana B"), Email: ptr("")}
	userAdapter.EXPECT().UpdateUser(ctx, int64(1), expected).Return(models.User{ID: 1, Name: "Ana B"}, nil)

	require.NoError(t, app.Run(ctx, []string{"update", "1", "-name", "Ana B", "-email="}))
}

func TestRun_GetDeleteList(t *testing.T) {
	app, userAdapter, out := newTestApp(t)
	ctx := context.Background()

	userAdapter.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	userAdapter.EXPECT().DeleteUser(ctx, int64(2)).Return(models.MessageResponse{Message: "User deleted successfully"}, nil)
	userAdapter.EXPECT().ListUsers(ctx).Return([]models.User{}, nil)

	require.NoError(t, app.Run(ctx, []string{"get", "2"}))
	require.NoError(t, app.Run(ctx, []string{"delete", "2"}))
	require.NoError(t, app.Run(ctx, []string{"list"}))

	assert.Contains(t, out.String(), "User deleted successfully")
	assert.Contains(t, out.String(), "[]")
}

func TestRun_Version(t *testing.T) {
	app, userAdapter, out := newTestApp(t)
	ctx := context.Background()

	userAdapter.EXPECT().GetVersion(ctx).Return("v1.0.0", nil)

	require.NoError(t, app.Run(ctx, []string{"version"}))
	assert.Equal(t, "v1.0.0\n", out.String())
}

func TestRun_AdapterErrorIsReturned(t *testing.T) {
	app, userAdapter, out := newTestApp(t)
	ctx := context.Background()

	userAdapter.EXPECT().GetUser(ctx, int64(9)).Return(models.User{}, adapter.ErrNotFound)

	err := app.Run(ctx, []string{"get", "9"})
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.Empty(t, out.String())
}

func TestRun_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "no command", args: nil, wantErr: ErrNoCommand},
		{name: "unknown command", args: []string{"purge"}, wantErr: ErrUnknownCommand},
		{name: "get without id", args: []string{"get"}, wantErr: ErrInvalidUserID},
		{name: "delete with bad id", args: []string{"delete", "abc"}, wantErr: ErrInvalidUserID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, _ := newTestApp(t)
			assert.ErrorIs(t, app.Run(context.Background(), tt.args), tt.wantErr)
		})
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	app, _, _ := newTestApp(t)

	err := app.Run(context.Background(), []string{"create", "-age", "30"})
	assert.Error(t, err)
}
