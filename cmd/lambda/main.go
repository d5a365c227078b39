package main

import (
	"context"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/saulo-duarte/goal-pulse/internal/config"
	"github.com/saulo-duarte/goal-pulse/internal/container"
	"github.com/spf13/viper"
)

// API Gateway proxies only the REST surface. The hub still receives every event but
// has no observers here, so broadcasts are no-ops.
func main() {
	ctx := context.Background()

	settings, err := config.LoadSettings(viper.New(), "")
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	c, err := container.New(ctx, settings)
	if err != nil {
		log.Fatalf("failed to build container: %v", err)
	}

	adapter := chiadapter.New(c.Router)
	lambda.Start(adapter.ProxyWithContext)
}
