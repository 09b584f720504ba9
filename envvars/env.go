package envvars

import (
	"log"
	"os"
)

const (
	GCPProjectID  = "GCP_PROJECT_ID"
	StorageBucket = "STORAGE_BUCKET"
	SessionSecret = "SESSION_SECRET"
	IdentityKey   = "IDENTITY_API_KEY"
	HubAPIURL     = "HUB_API_URL"
	HubClientID   = "HUB_CLIENT_ID"
	HubPrivateKey = "HUB_PRIVATE_KEY"
	HubPublicKey  = "HUB_PUBLIC_KEY"
	Environment   = "ENVIRONMENT"
)

const (
	DevEnv        = "dev"
	ProductionEnv = "production"
)

type Env struct {
	ProjectID     string
	Bucket        string
	SessionSecret string
	IdentityKey   string
	HubAPIURL     string
	HubClientID   string
	HubPrivateKey string
	HubPublicKey  string
	Environment   string
}

func GetEvn() Env {
	projectID, ok := os.LookupEnv(GCPProjectID)
	if !ok {
		log.Fatalf("%s required", GCPProjectID)
	}
	bucket, ok := os.LookupEnv(StorageBucket)
	if !ok {
		log.Fatalf("%s required", StorageBucket)
	}
	secret, ok := os.LookupEnv(SessionSecret)
	if !ok {
		log.Fatalf("%s required", SessionSecret)
	}
	identityKey, ok := os.LookupEnv(IdentityKey)
	if !ok {
		log.Fatalf("%s required", IdentityKey)
	}
	hubURL, ok := os.LookupEnv(HubAPIURL)
	if !ok {
		hubURL = "https://id.hubculture.com"
	}
	environment, ok := os.LookupEnv(Environment)
	if !ok {
		environment = DevEnv
	}
	return Env{
		ProjectID:     projectID,
		Bucket:        bucket,
		SessionSecret: secret,
		IdentityKey:   identityKey,
		HubAPIURL:     hubURL,
		HubClientID:   os.Getenv(HubClientID),
		HubPrivateKey: os.Getenv(HubPrivateKey),
		HubPublicKey:  os.Getenv(HubPublicKey),
		Environment:   environment,
	}
}

func IsProd(e Env) bool {
	return e.Environment == ProductionEnv
}

func IsDev(e Env) bool {
	return e.Environment == DevEnv
}
