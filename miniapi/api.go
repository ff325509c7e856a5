package miniapi

import (
	"github.com/minihost/bridgekit/bridge"
)

// Client is the named-method surface over a capability object. Construct it
// once with the host's capability; every method returns an independent
// promise per invocation.
type Client struct {
	bridge *bridge.Bridge
}

// New creates a Client over the given capability object. Options are passed
// through to the underlying bridge.
func New(cap bridge.Capability, opts ...bridge.Option) *Client {
	return &Client{bridge: bridge.New(cap, opts...)}
}

// Wrap creates a Client over an existing bridge.
func Wrap(b *bridge.Bridge) *Client {
	return &Client{bridge: b}
}

// Bridge returns the underlying bridge, for generic invocation of
// operations outside the named surface.
func (c *Client) Bridge() *bridge.Bridge {
	return c.bridge
}

// Close releases the underlying bridge.
func (c *Client) Close() error {
	return c.bridge.Close()
}

// Auth and session.

func (c *Client) Login(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpLogin, opts)
}

func (c *Client) CheckSession(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpCheckSession, opts)
}

func (c *Client) GetUserInfo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetUserInfo, opts)
}

func (c *Client) Authorize(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpAuthorize, opts)
}

// UI prompts.

func (c *Client) ShowToast(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpShowToast, opts)
}

func (c *Client) HideToast(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpHideToast, opts)
}

func (c *Client) ShowModal(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpShowModal, opts)
}

func (c *Client) ShowActionSheet(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpShowActionSheet, opts)
}

func (c *Client) ShowLoading(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpShowLoading, opts)
}

func (c *Client) HideLoading(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpHideLoading, opts)
}

// Navigation.

func (c *Client) NavigateTo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpNavigateTo, opts)
}

func (c *Client) RedirectTo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpRedirectTo, opts)
}

func (c *Client) SwitchTab(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpSwitchTab, opts)
}

func (c *Client) NavigateBack(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpNavigateBack, opts)
}

func (c *Client) ReLaunch(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpReLaunch, opts)
}

// Network.

func (c *Client) Request(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpRequest, opts)
}

// File transfer.

func (c *Client) UploadFile(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpUploadFile, opts)
}

func (c *Client) DownloadFile(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpDownloadFile, opts)
}

func (c *Client) SaveFile(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpSaveFile, opts)
}

func (c *Client) GetFileInfo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetFileInfo, opts)
}

// Sockets. The On* subscriptions follow the bare-callback convention: the
// handler is forwarded as the operation's sole argument.

func (c *Client) ConnectSocket(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpConnectSocket, opts)
}

func (c *Client) CloseSocket(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpCloseSocket, opts)
}

func (c *Client) SendSocketMessage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpSendSocketMessage, opts)
}

func (c *Client) OnSocketOpen(cb bridge.Callback) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpOnSocketOpen, cb)
}

func (c *Client) OnSocketMessage(cb bridge.Callback) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpOnSocketMessage, cb)
}

func (c *Client) OnSocketClose(cb bridge.Callback) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpOnSocketClose, cb)
}

func (c *Client) OnSocketError(cb bridge.Callback) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpOnSocketError, cb)
}

// Images.

func (c *Client) ChooseImage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpChooseImage, opts)
}

func (c *Client) PreviewImage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpPreviewImage, opts)
}

func (c *Client) GetImageInfo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetImageInfo, opts)
}

func (c *Client) SaveImageToPhotosAlbum(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpSaveImageToPhotosAlbum, opts)
}

// Storage.

func (c *Client) SetStorage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpSetStorage, opts)
}

func (c *Client) GetStorage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetStorage, opts)
}

func (c *Client) RemoveStorage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpRemoveStorage, opts)
}

func (c *Client) ClearStorage(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpClearStorage, opts)
}

func (c *Client) GetStorageInfo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetStorageInfo, opts)
}

// Device and system.

func (c *Client) GetSystemInfo(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetSystemInfo, opts)
}

func (c *Client) GetNetworkType(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetNetworkType, opts)
}

func (c *Client) GetLocation(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetLocation, opts)
}

func (c *Client) ScanCode(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpScanCode, opts)
}

func (c *Client) SetClipboardData(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpSetClipboardData, opts)
}

func (c *Client) GetClipboardData(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpGetClipboardData, opts)
}

func (c *Client) MakePhoneCall(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpMakePhoneCall, opts)
}

func (c *Client) VibrateShort(opts bridge.Options) (*bridge.Promise, error) {
	return c.bridge.Invoke(bridge.OpVibrateShort, opts)
}
