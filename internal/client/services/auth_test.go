package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/nftconsole/internal/client/client"
	"github.com/dmitrijs2005/nftconsole/internal/client/models"
	"github.com/dmitrijs2005/nftconsole/internal/client/repositories/filestore"
	"github.com/dmitrijs2005/nftconsole/internal/client/session"
)

func newSessions(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filestore.New(t.TempDir()), nil)
}

func adminRecord() session.Record {
	return session.Record{
		Identity: session.Identity{ID: "1", Username: "alice", Email: "a@b.c", Role: session.RoleAdmin},
		Token:    "tok",
	}
}

func TestLogin_SavesSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{RecordRet: adminRecord()}
	sessions := newSessions(t)
	svc := NewAuthService(fc, sessions)

	rec, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, adminRecord(), rec)
	assert.Equal(t, models.Credentials{Email: "a@b.c", Password: "pw"}, fc.LastCredentials)

	cur, ok := svc.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, adminRecord(), cur)
	assert.Equal(t, "Bearer tok", sessions.AuthorizationHeader(ctx).Get("Authorization"))
}

func TestLogin_ErrorKeepsPriorSession(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions(t)
	require.NoError(t, sessions.Save(ctx, adminRecord()))

	fc := &fakeClient{LoginErr: client.ErrUnauthorized}
	svc := NewAuthService(fc, sessions)

	_, err := svc.Login(ctx, models.Credentials{Email: "x@y.z", Password: "bad"})
	require.ErrorIs(t, err, client.ErrUnauthorized)

	cur, ok := svc.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", cur.Username)
}

func TestLogin_IncompleteRecordIsRejected(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{RecordRet: session.Record{Identity: session.Identity{Role: "user"}}}
	svc := NewAuthService(fc, newSessions(t))

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, session.ErrIncompleteRecord)

	_, ok := svc.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestLogin_MissingCredentials(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSessions(t))

	_, err := svc.Login(context.Background(), models.Credentials{Email: " ", Password: "pw"})
	require.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, fc.Calls)
}

func TestRegister_SavesSession(t *testing.T) {
	ctx := context.Background()
	rec := adminRecord()
	rec.Role = "user"
	fc := &fakeClient{RecordRet: rec}
	svc := NewAuthService(fc, newSessions(t))

	in := models.Registration{Username: "alice", Email: "a@b.c", Password: "pw"}
	got, err := svc.Register(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
	assert.Equal(t, in, fc.LastRegistration)

	cur, ok := svc.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "user", cur.Role)
}

func TestRegister_MissingUsername(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, newSessions(t))

	_, err := svc.Register(context.Background(), models.Registration{Email: "a@b.c", Password: "pw"})
	require.ErrorIs(t, err, ErrMissingCredentials)
	assert.Zero(t, fc.Calls)
}

func TestLogout_ClearsSession(t *testing.T) {
	ctx := context.Background()
	sessions := newSessions(t)
	require.NoError(t, sessions.Save(ctx, adminRecord()))
	svc := NewAuthService(&fakeClient{}, sessions)

	svc.Logout(ctx)
	svc.Logout(ctx)

	_, ok := svc.CurrentUser(ctx)
	assert.False(t, ok)
	assert.Empty(t, sessions.AuthorizationHeader(ctx))
}
