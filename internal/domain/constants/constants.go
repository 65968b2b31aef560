// Package constants holds string identifiers shared by config and infra providers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Content generator providers
const (
	AIProviderOpenAI = "openai"
	AIProviderGemini = "gemini"
	AIProviderMock   = "mock"
)

// SessionCookieName is the default cookie carrying the session token.
const SessionCookieName = "auth_token"
