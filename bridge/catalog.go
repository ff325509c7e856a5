package bridge

// Category groups operations in the catalog by host subsystem.
type Category string

const (
	CategoryAuth       Category = "auth"
	CategoryUI         Category = "ui"
	CategoryNavigation Category = "navigation"
	CategoryNetwork    Category = "network"
	CategoryFile       Category = "file"
	CategorySocket     Category = "socket"
	CategoryStorage    Category = "storage"
	CategoryMedia      Category = "media"
	CategoryDevice     Category = "device"
)

// Names of the standard host operations. The bridge accepts any name the
// capability object answers to; these constants cover the conventional
// mini-app surface and back the catalog and the miniapi package.
const (
	OpLogin        = "login"
	OpCheckSession = "checkSession"
	OpGetUserInfo  = "getUserInfo"
	OpAuthorize    = "authorize"

	OpShowToast       = "showToast"
	OpHideToast       = "hideToast"
	OpShowModal       = "showModal"
	OpShowActionSheet = "showActionSheet"
	OpShowLoading     = "showLoading"
	OpHideLoading     = "hideLoading"

	OpNavigateTo   = "navigateTo"
	OpRedirectTo   = "redirectTo"
	OpSwitchTab    = "switchTab"
	OpNavigateBack = "navigateBack"
	OpReLaunch     = "reLaunch"

	OpRequest = "request"

	OpUploadFile   = "uploadFile"
	OpDownloadFile = "downloadFile"
	OpSaveFile     = "saveFile"
	OpGetFileInfo  = "getFileInfo"

	OpConnectSocket     = "connectSocket"
	OpCloseSocket       = "closeSocket"
	OpSendSocketMessage = "sendSocketMessage"
	OpOnSocketOpen      = "onSocketOpen"
	OpOnSocketMessage   = "onSocketMessage"
	OpOnSocketClose     = "onSocketClose"
	OpOnSocketError     = "onSocketError"

	OpChooseImage            = "chooseImage"
	OpPreviewImage           = "previewImage"
	OpGetImageInfo           = "getImageInfo"
	OpSaveImageToPhotosAlbum = "saveImageToPhotosAlbum"

	OpSetStorage     = "setStorage"
	OpGetStorage     = "getStorage"
	OpRemoveStorage  = "removeStorage"
	OpClearStorage   = "clearStorage"
	OpGetStorageInfo = "getStorageInfo"

	OpGetSystemInfo    = "getSystemInfo"
	OpGetNetworkType   = "getNetworkType"
	OpGetLocation      = "getLocation"
	OpScanCode         = "scanCode"
	OpSetClipboardData = "setClipboardData"
	OpGetClipboardData = "getClipboardData"
	OpMakePhoneCall    = "makePhoneCall"
	OpVibrateShort     = "vibrateShort"
)

// OperationInfo describes a known operation in the catalog.
type OperationInfo struct {
	Name       string     `json:"name"`
	Category   Category   `json:"category"`
	Convention Convention `json:"convention"`
	Summary    string     `json:"summary"`
}

// Operations is the built-in catalog of the conventional mini-app surface.
var Operations = []OperationInfo{
	{Name: OpLogin, Category: CategoryAuth, Convention: ConventionStructured, Summary: "Obtain a login credential for the current user."},
	{Name: OpCheckSession, Category: CategoryAuth, Convention: ConventionStructured, Summary: "Check whether the login session is still valid."},
	{Name: OpGetUserInfo, Category: CategoryAuth, Convention: ConventionStructured, Summary: "Fetch the current user's profile."},
	{Name: OpAuthorize, Category: CategoryAuth, Convention: ConventionStructured, Summary: "Request a scoped user authorization."},

	{Name: OpShowToast, Category: CategoryUI, Convention: ConventionStructured, Summary: "Display a transient toast."},
	{Name: OpHideToast, Category: CategoryUI, Convention: ConventionStructured, Summary: "Dismiss the current toast."},
	{Name: OpShowModal, Category: CategoryUI, Convention: ConventionStructured, Summary: "Display a modal dialog."},
	{Name: OpShowActionSheet, Category: CategoryUI, Convention: ConventionStructured, Summary: "Display an action sheet."},
	{Name: OpShowLoading, Category: CategoryUI, Convention: ConventionStructured, Summary: "Display a loading indicator."},
	{Name: OpHideLoading, Category: CategoryUI, Convention: ConventionStructured, Summary: "Dismiss the loading indicator."},

	{Name: OpNavigateTo, Category: CategoryNavigation, Convention: ConventionStructured, Summary: "Push a page onto the navigation stack."},
	{Name: OpRedirectTo, Category: CategoryNavigation, Convention: ConventionStructured, Summary: "Replace the current page."},
	{Name: OpSwitchTab, Category: CategoryNavigation, Convention: ConventionStructured, Summary: "Switch to a tab-bar page."},
	{Name: OpNavigateBack, Category: CategoryNavigation, Convention: ConventionStructured, Summary: "Pop pages off the navigation stack."},
	{Name: OpReLaunch, Category: CategoryNavigation, Convention: ConventionStructured, Summary: "Close all pages and open one."},

	{Name: OpRequest, Category: CategoryNetwork, Convention: ConventionStructured, Summary: "Issue an HTTP request through the host."},

	{Name: OpUploadFile, Category: CategoryFile, Convention: ConventionStructured, Summary: "Upload a local file."},
	{Name: OpDownloadFile, Category: CategoryFile, Convention: ConventionStructured, Summary: "Download a file to local storage."},
	{Name: OpSaveFile, Category: CategoryFile, Convention: ConventionStructured, Summary: "Persist a temporary file."},
	{Name: OpGetFileInfo, Category: CategoryFile, Convention: ConventionStructured, Summary: "Stat a local file."},

	{Name: OpConnectSocket, Category: CategorySocket, Convention: ConventionStructured, Summary: "Open a socket connection."},
	{Name: OpCloseSocket, Category: CategorySocket, Convention: ConventionStructured, Summary: "Close the socket connection."},
	{Name: OpSendSocketMessage, Category: CategorySocket, Convention: ConventionStructured, Summary: "Send a socket frame."},
	{Name: OpOnSocketOpen, Category: CategorySocket, Convention: ConventionBare, Summary: "Subscribe to socket open events."},
	{Name: OpOnSocketMessage, Category: CategorySocket, Convention: ConventionBare, Summary: "Subscribe to socket message events."},
	{Name: OpOnSocketClose, Category: CategorySocket, Convention: ConventionBare, Summary: "Subscribe to socket close events."},
	{Name: OpOnSocketError, Category: CategorySocket, Convention: ConventionBare, Summary: "Subscribe to socket error events."},

	{Name: OpChooseImage, Category: CategoryMedia, Convention: ConventionStructured, Summary: "Pick images from album or camera."},
	{Name: OpPreviewImage, Category: CategoryMedia, Convention: ConventionStructured, Summary: "Open the full-screen image previewer."},
	{Name: OpGetImageInfo, Category: CategoryMedia, Convention: ConventionStructured, Summary: "Read image metadata."},
	{Name: OpSaveImageToPhotosAlbum, Category: CategoryMedia, Convention: ConventionStructured, Summary: "Save an image to the photo album."},

	{Name: OpSetStorage, Category: CategoryStorage, Convention: ConventionStructured, Summary: "Write a key to host storage."},
	{Name: OpGetStorage, Category: CategoryStorage, Convention: ConventionStructured, Summary: "Read a key from host storage."},
	{Name: OpRemoveStorage, Category: CategoryStorage, Convention: ConventionStructured, Summary: "Delete a key from host storage."},
	{Name: OpClearStorage, Category: CategoryStorage, Convention: ConventionStructured, Summary: "Clear host storage."},
	{Name: OpGetStorageInfo, Category: CategoryStorage, Convention: ConventionStructured, Summary: "Report host storage usage."},

	{Name: OpGetSystemInfo, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Read device and runtime information."},
	{Name: OpGetNetworkType, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Read the current network type."},
	{Name: OpGetLocation, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Read the device location."},
	{Name: OpScanCode, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Scan a barcode or QR code."},
	{Name: OpSetClipboardData, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Write the clipboard."},
	{Name: OpGetClipboardData, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Read the clipboard."},
	{Name: OpMakePhoneCall, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Start a phone call."},
	{Name: OpVibrateShort, Category: CategoryDevice, Convention: ConventionStructured, Summary: "Trigger a short vibration."},
}

var operationIndex = buildOperationIndex()

func buildOperationIndex() map[string]*OperationInfo {
	idx := make(map[string]*OperationInfo, len(Operations))
	for i := range Operations {
		idx[Operations[i].Name] = &Operations[i]
	}
	return idx
}

// GetOperationInfo returns catalog information for an operation name, or nil
// for names outside the catalog.
func GetOperationInfo(name string) *OperationInfo {
	return operationIndex[name]
}

// ListOperations returns the catalog entries for a category, or the whole
// catalog when category is empty.
func ListOperations(category Category) []OperationInfo {
	if category == "" {
		out := make([]OperationInfo, len(Operations))
		copy(out, Operations)
		return out
	}
	var out []OperationInfo
	for _, op := range Operations {
		if op.Category == category {
			out = append(out, op)
		}
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func Categories() []Category {
	seen := make(map[Category]bool)
	var out []Category
	for _, op := range Operations {
		if !seen[op.Category] {
			seen[op.Category] = true
			out = append(out, op.Category)
		}
	}
	return out
}
