package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	ginmiddleware "github.com/oapi-codegen/gin-middleware"

	"campCrew/api"
	"campCrew/clients/gcp"
	"campCrew/envvars"
	"campCrew/services/auth"
	"campCrew/services/campmap"
	"campCrew/services/contact"
	"campCrew/services/media"
	"campCrew/services/shift"
	"campCrew/services/siteconfig"
	"campCrew/services/user"
	"campCrew/validator"
)

func main() {
	ctx := context.Background()
	env := envvars.GetEvn()

	firestore := gcp.CreateFirestore(ctx, env.ProjectID)
	defer firestore.Close()

	storage, err := gcp.NewStorage(ctx, env.Bucket)
	if err != nil {
		log.Fatalf("Failed to create storage client: %v", err)
	}
	defer storage.Close()

	httpClient := resty.New()
	bridge := auth.NewBridgeService(httpClient, env.HubAPIURL, env.HubClientID, env.HubPrivateKey, env.HubPublicKey)

	userService := user.NewService(firestore)
	authService := auth.NewService(httpClient, env.IdentityKey, []byte(env.SessionSecret), bridge, userService)
	shiftService := shift.NewService(firestore)
	mapService := campmap.NewService(firestore, storage)
	mediaService := media.NewService(firestore, storage)
	contactService := contact.NewService(firestore)
	configService := siteconfig.NewService(firestore)

	server := api.NewServer(authService, userService, shiftService, mapService, mediaService, contactService, configService)

	// Load OpenAPI spec file
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromFile("./api/openapi.yaml")
	if err != nil {
		slog.Error("failed to load openapi spec file")
		return
	}
	// Clear out the servers array in the swagger spec, that skips validating
	// that server names match. We don't know how this thing will be run.
	swagger.Servers = nil

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/openapi", func(c *gin.Context) {
		c.Header("Content-Type", "application/x-yaml")
		c.File("./api/openapi.yaml")
	})

	r.Use(ginmiddleware.OapiRequestValidatorWithOptions(swagger, &ginmiddleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: validator.NewAuthenticator(authService.ParseToken),
		},
	}))
	server.RegisterRoutes(r)

	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:8080",
	}

	slog.Info("Starting HTTP server on port 8080")
	log.Fatal(s.ListenAndServe())
}
