package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/nauticalflow/internal/client/client"
	"github.com/dmitrijs2005/nauticalflow/internal/client/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGate struct {
	allow bool
	calls int
}

func (g *fixedGate) Check(context.Context) bool {
	g.calls++
	return g.allow
}

func TestCall_GuardRefusesNothingSent(t *testing.T) {
	fc := &fakeClient{}
	gate := &fixedGate{allow: false}
	svc := NewResourceService(fc, gate)

	_, err := svc.Call(context.Background(), "get", "/api/vessels", nil)
	require.ErrorIs(t, err, session.ErrSessionTerminated)
	assert.Equal(t, 1, gate.calls)
	assert.Zero(t, fc.Requests)
}

func TestCall_SendsAfterGuard(t *testing.T) {
	fc := &fakeClient{RequestRet: &client.Response{Status: 200, Body: json.RawMessage(`[]`)}}
	svc := NewResourceService(fc, &fixedGate{allow: true})

	resp, err := svc.Call(context.Background(), "post", "/api/routes", []byte(`{"from":"Oslo"}`))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)

	assert.Equal(t, "/api/routes", fc.LastEndpoint)
	assert.Equal(t, http.MethodPost, fc.LastOpts.Method)
	assert.Equal(t, []byte(`{"from":"Oslo"}`), fc.LastOpts.Body)
	assert.False(t, fc.LastOpts.SkipAuth)
}

func TestCall_NoBodyLeavesBodyNil(t *testing.T) {
	fc := &fakeClient{RequestRet: &client.Response{Status: 204}}
	svc := NewResourceService(fc, &fixedGate{allow: true})

	_, err := svc.Call(context.Background(), "DELETE", "/api/routes/3", nil)
	require.NoError(t, err)
	assert.Nil(t, fc.LastOpts.Body)
}

func TestCall_InvalidBody(t *testing.T) {
	fc := &fakeClient{}
	svc := NewResourceService(fc, &fixedGate{allow: true})

	_, err := svc.Call(context.Background(), "put", "/api/routes/3", []byte(`{from:`))
	require.ErrorIs(t, err, ErrInvalidBody)
	assert.Zero(t, fc.Requests)
}

func TestCall_GatewayErrorPassesThrough(t *testing.T) {
	fc := &fakeClient{RequestErr: &client.RequestError{Status: 500, Message: "solver crashed", Err: client.ErrRejected}}
	svc := NewResourceService(fc, &fixedGate{allow: true})

	_, err := svc.Call(context.Background(), "get", "/api/optimize", nil)
	require.ErrorIs(t, err, client.ErrRejected)
	assert.Equal(t, "solver crashed", err.Error())
}
