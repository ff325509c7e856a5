package miniapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minihost/bridgekit/bridge"
)

// recordingCapability answers every operation name and records the last
// invocation. Structured calls settle immediately with result or failWith;
// bare calls return result directly.
type recordingCapability struct {
	lastOp   string
	lastArgs []any
	result   any
	failWith any
}

func (r *recordingCapability) Lookup(name string) (bridge.HostFunc, bool) {
	return func(args ...any) any {
		r.lastOp = name
		r.lastArgs = args
		if opts, ok := args[0].(bridge.Options); ok {
			if r.failWith != nil {
				opts[bridge.KeyFail].(bridge.Callback)(r.failWith)
			} else {
				opts[bridge.KeySuccess].(bridge.Callback)(r.result)
			}
		}
		return r.result
	}, true
}

func TestLoginScenario(t *testing.T) {
	cap := bridge.CapabilityMap{
		"login": func(args ...any) any {
			opts := args[0].(bridge.Options)
			opts[bridge.KeySuccess].(bridge.Callback)(map[string]any{"errMsg": "login:ok", "code": "abc"})
			return nil
		},
	}
	client := New(cap)

	p, err := client.Login(bridge.Options{})
	require.NoError(t, err)

	res, err := p.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"errMsg": "login:ok", "code": "abc"}, res)
	assert.Equal(t, "login:ok", bridge.ErrMsg(res))
}

func TestRequestFailureScenario(t *testing.T) {
	cap := bridge.CapabilityMap{
		"request": func(args ...any) any {
			opts := args[0].(bridge.Options)
			opts[bridge.KeyFail].(bridge.Callback)(map[string]any{"errMsg": "request:fail timeout"})
			return nil
		},
	}
	client := New(cap)

	p, err := client.Get("/x", nil, nil)
	require.NoError(t, err)

	_, err = p.Await(context.Background())
	require.Error(t, err)
	payload, ok := bridge.RejectionPayload(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"errMsg": "request:fail timeout"}, payload)
}

func TestPostMergesPositionalArguments(t *testing.T) {
	rec := &recordingCapability{result: "ok"}
	client := New(rec)

	data := map[string]any{"user": "u1"}
	header := map[string]any{"Content-Type": "application/json"}
	p, err := client.Post("/users", data, header)
	require.NoError(t, err)
	_, err = p.Await(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "request", rec.lastOp)
	require.Len(t, rec.lastArgs, 1)
	opts, ok := rec.lastArgs[0].(bridge.Options)
	require.True(t, ok)

	assert.Equal(t, "POST", opts["method"])
	assert.Equal(t, "/users", opts["url"])
	assert.Equal(t, data, opts["data"])
	assert.Equal(t, header, opts["header"])
	assert.Contains(t, opts, bridge.KeySuccess)
	assert.Contains(t, opts, bridge.KeyFail)
}

func TestVerbShortcutsOmitAbsentFields(t *testing.T) {
	rec := &recordingCapability{}
	client := New(rec)

	_, err := client.Get("/x", nil, nil)
	require.NoError(t, err)

	opts := rec.lastArgs[0].(bridge.Options)
	assert.Equal(t, "GET", opts["method"])
	assert.Equal(t, "/x", opts["url"])
	assert.NotContains(t, opts, "data")
	assert.NotContains(t, opts, "header")
}

func TestNamedMethodsDelegateToCatalogOperations(t *testing.T) {
	rec := &recordingCapability{}
	client := New(rec)

	cases := []struct {
		op   string
		call func(bridge.Options) (*bridge.Promise, error)
	}{
		{bridge.OpLogin, client.Login},
		{bridge.OpCheckSession, client.CheckSession},
		{bridge.OpGetUserInfo, client.GetUserInfo},
		{bridge.OpAuthorize, client.Authorize},
		{bridge.OpShowToast, client.ShowToast},
		{bridge.OpHideToast, client.HideToast},
		{bridge.OpShowModal, client.ShowModal},
		{bridge.OpShowActionSheet, client.ShowActionSheet},
		{bridge.OpShowLoading, client.ShowLoading},
		{bridge.OpHideLoading, client.HideLoading},
		{bridge.OpNavigateTo, client.NavigateTo},
		{bridge.OpRedirectTo, client.RedirectTo},
		{bridge.OpSwitchTab, client.SwitchTab},
		{bridge.OpNavigateBack, client.NavigateBack},
		{bridge.OpReLaunch, client.ReLaunch},
		{bridge.OpRequest, client.Request},
		{bridge.OpUploadFile, client.UploadFile},
		{bridge.OpDownloadFile, client.DownloadFile},
		{bridge.OpSaveFile, client.SaveFile},
		{bridge.OpGetFileInfo, client.GetFileInfo},
		{bridge.OpConnectSocket, client.ConnectSocket},
		{bridge.OpCloseSocket, client.CloseSocket},
		{bridge.OpSendSocketMessage, client.SendSocketMessage},
		{bridge.OpChooseImage, client.ChooseImage},
		{bridge.OpPreviewImage, client.PreviewImage},
		{bridge.OpGetImageInfo, client.GetImageInfo},
		{bridge.OpSaveImageToPhotosAlbum, client.SaveImageToPhotosAlbum},
		{bridge.OpSetStorage, client.SetStorage},
		{bridge.OpGetStorage, client.GetStorage},
		{bridge.OpRemoveStorage, client.RemoveStorage},
		{bridge.OpClearStorage, client.ClearStorage},
		{bridge.OpGetStorageInfo, client.GetStorageInfo},
		{bridge.OpGetSystemInfo, client.GetSystemInfo},
		{bridge.OpGetNetworkType, client.GetNetworkType},
		{bridge.OpGetLocation, client.GetLocation},
		{bridge.OpScanCode, client.ScanCode},
		{bridge.OpSetClipboardData, client.SetClipboardData},
		{bridge.OpGetClipboardData, client.GetClipboardData},
		{bridge.OpMakePhoneCall, client.MakePhoneCall},
		{bridge.OpVibrateShort, client.VibrateShort},
	}
	for _, tc := range cases {
		_, err := tc.call(nil)
		require.NoError(t, err, tc.op)
		assert.Equal(t, tc.op, rec.lastOp)

		info := bridge.GetOperationInfo(tc.op)
		require.NotNil(t, info, "named method %s must be cataloged", tc.op)
		assert.Equal(t, bridge.ConventionStructured, info.Convention, tc.op)
	}
}

func TestSocketSubscriptions(t *testing.T) {
	rec := &recordingCapability{result: "subscribed"}
	client := New(rec)

	var delivered any
	cb := bridge.Callback(func(v any) { delivered = v })

	cases := []struct {
		op   string
		call func(bridge.Callback) (*bridge.Promise, error)
	}{
		{bridge.OpOnSocketOpen, client.OnSocketOpen},
		{bridge.OpOnSocketMessage, client.OnSocketMessage},
		{bridge.OpOnSocketClose, client.OnSocketClose},
		{bridge.OpOnSocketError, client.OnSocketError},
	}
	for _, tc := range cases {
		p, err := tc.call(cb)
		require.NoError(t, err, tc.op)
		assert.Equal(t, tc.op, rec.lastOp)

		// Bare convention: the handler is the sole argument and the promise
		// resolves with the host's return value.
		require.Len(t, rec.lastArgs, 1, tc.op)
		got, err := p.Await(context.Background())
		require.NoError(t, err, tc.op)
		assert.Equal(t, "subscribed", got, tc.op)

		fn, ok := rec.lastArgs[0].(bridge.Callback)
		require.True(t, ok, "%s should receive the handler uninjected", tc.op)
		fn("frame")
		assert.Equal(t, "frame", delivered, tc.op)
	}
}

func TestClientWithoutCapability(t *testing.T) {
	client := New(nil)

	p, err := client.Login(nil)
	assert.Nil(t, p)
	assert.True(t, bridge.IsMissingCapability(err))
}

func TestWrapReusesBridge(t *testing.T) {
	b := bridge.New(&recordingCapability{})
	client := Wrap(b)
	assert.Same(t, b, client.Bridge())
}
