package domain

// SentryWebhook is the error-monitoring alert payload relayed to chat.
// Device, OS, and user blocks are frequently absent and degrade to "unknown"
// in the relayed message.
type SentryWebhook struct {
	URL   string      `json:"url"`
	Event SentryEvent `json:"event"`
}

type SentryEvent struct {
	Title       string         `json:"title"`
	Level       string         `json:"level"`
	Environment string         `json:"environment"`
	Metadata    SentryMetadata `json:"metadata"`
	User        *SentryUser    `json:"user"`
	Contexts    SentryContexts `json:"contexts"`
}

type SentryMetadata struct {
	Type string `json:"type"`
}

type SentryUser struct {
	IPAddress string    `json:"ip_address"`
	Geo       SentryGeo `json:"geo"`
}

type SentryGeo struct {
	Region string `json:"region"`
	City   string `json:"city"`
}

type SentryContexts struct {
	Device  *SentryDevice  `json:"device"`
	Browser *SentryRuntime `json:"browser"`
	OS      *SentryRuntime `json:"os"`
}

type SentryDevice struct {
	Family string `json:"family"`
}

type SentryRuntime struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Version string `json:"version"`
}
