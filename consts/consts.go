package consts

// UpdateStatusType 更新状态
type UpdateStatusType string

const (
	// UpdatedNothing 未改变
	UpdatedNothing UpdateStatusType = "UnChanged"
	// UpdatedLocked record is locked on the provider side
	UpdatedLocked UpdateStatusType = "Locked"
	// UpdatedFailed 更新失败
	UpdatedFailed UpdateStatusType = "Failure"
	// UpdatedSuccess 更新成功
	UpdatedSuccess UpdateStatusType = "Success"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderCacheControl  = "Cache-Control"
	MIMEApplicationJSON = "application/json"
	DefaultDDNSName     = "cloudflare"
	DefaultAPIEndpoint  = "https://api.cloudflare.com/client/v4"
	DefaultIPv4Lookup   = "https://ip4only.me/api/"
	DefaultIPv6Lookup   = "https://ip6only.me/api/"
	DefaultHTTPTimeout  = 30
	MinimumIntervalSecs = 60
)

const (
	StatusReady   int32 = 0  // Job or Timer is ready for running.
	StatusRunning int32 = 1  // Job or Timer is already running.
	StatusStopped int32 = 2  // Job or Timer is stopped.
	StatusClosed  int32 = -1 // Job or Timer is closed and waiting to be deleted.
)

const (
	ConfigFilePathENV = "DDNS_CONFIG_FILE_PATH"
	EnvPrefix         = "DDNS"
)
