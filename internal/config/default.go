package config

import "time"

const ErrorSpanTag = "error"

const (
	DefaultReadTimeout  = 15 * time.Second
	DefaultWriteTimeout = 15 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	ShutdownTimeout     = 10 * time.Second
	MaxBodySize         = 10 << 20 // 10 MB
)

const (
	RegistryMemory   = "memory"
	RegistryRedis    = "redis"
	RegistryPostgres = "postgres"

	PushSimulated = "simulated"
	PushRelay     = "relay"
)

const (
	DefaultNotificationTitle = "Push Notifications PoC"
	DefaultNotificationBody  = "Nova notificação"
	NotificationTag          = "firebase-notification"
	NotificationIcon         = "/vite.svg"
)

const (
	RelayChannelPrefix = "push:"
	TokenKeyPrefix     = "device_token:"
	TokenSetKey        = "device_tokens"
)
