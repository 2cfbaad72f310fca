package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Blob storage providers
const (
	StorageProviderBlob = "blob"
	StorageProviderS3   = "s3"
)

// Document verifiers
const (
	VerifierContent = "content"
	VerifierOCR     = "ocr"
)

// Documents module API modes
const (
	DocumentsModuleInProcess = "inprocess"
	DocumentsModuleHTTP      = "http"
)

// Pub/Sub message attributes
const (
	AttributeRequestID  = "request_id"
	AttributeDocumentID = "document_id"
	AttributeProviderID = "provider_id"
)
