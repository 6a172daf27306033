package global

const (
	TenantId     = "tenant-id"
	ClientId     = "client-id"
	ClientSecret = "client-secret"
	LogLevel     = "log-level"

	TenantIdEnv     = "AZURE_TENANT_ID"
	ClientIdEnv     = "AZURE_CLIENT_ID"
	ClientSecretEnv = "AZURE_CLIENT_SECRET"

	GraphBaseUrl = "https://graph.microsoft.com/v1.0"
	GraphScope   = "https://graph.microsoft.com/.default"
)
