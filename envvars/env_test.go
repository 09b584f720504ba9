package envvars

import (
	"os"
	"reflect"
	"testing"
)

func TestGetEvn(t *testing.T) {
	// Backup and defer restore of environment variables
	backup := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range backup {
			pair := splitEnv(env)
			os.Setenv(pair[0], pair[1])
		}
	}()

	t.Run("all env vars set", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(GCPProjectID, "test-project")
		os.Setenv(StorageBucket, "test-bucket")
		os.Setenv(SessionSecret, "test-secret")
		os.Setenv(IdentityKey, "test-identity-key")
		os.Setenv(HubAPIURL, "https://hub.example.com")
		os.Setenv(HubClientID, "10050")
		os.Setenv(HubPrivateKey, "private_key")
		os.Setenv(HubPublicKey, "public_key")
		os.Setenv(Environment, "production")

		expected := Env{
			ProjectID:     "test-project",
			Bucket:        "test-bucket",
			SessionSecret: "test-secret",
			IdentityKey:   "test-identity-key",
			HubAPIURL:     "https://hub.example.com",
			HubClientID:   "10050",
			HubPrivateKey: "private_key",
			HubPublicKey:  "public_key",
			Environment:   ProductionEnv,
		}

		if got := GetEvn(); !reflect.DeepEqual(got, expected) {
			t.Errorf("GetEvn() = %v, want %v", got, expected)
		}
	})

	t.Run("environment defaults to dev", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(GCPProjectID, "test-project")
		os.Setenv(StorageBucket, "test-bucket")
		os.Setenv(SessionSecret, "test-secret")
		os.Setenv(IdentityKey, "test-identity-key")

		got := GetEvn()
		if got.Environment != DevEnv {
			t.Errorf("Expected environment to default to dev, got %s", got.Environment)
		}
	})

	t.Run("hub url has a default", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(GCPProjectID, "test-project")
		os.Setenv(StorageBucket, "test-bucket")
		os.Setenv(SessionSecret, "test-secret")
		os.Setenv(IdentityKey, "test-identity-key")

		got := GetEvn()
		if got.HubAPIURL == "" {
			t.Error("Expected hub url default to be set")
		}
	})
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitEnv(env string) []string {
	var s []string
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			s = append(s, env[:i])
			s = append(s, env[i+1:])
			return s
		}
	}
	// Return slice with empty strings if no '=' is found
	return []string{"", ""}
}
