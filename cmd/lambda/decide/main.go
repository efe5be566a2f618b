package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"preflop-decision-api/internal/config"
	"preflop-decision-api/internal/handlers"
	"preflop-decision-api/internal/models"
	"preflop-decision-api/pkg/lambda"
	"preflop-decision-api/pkg/server"
)

var decisionHandler *handlers.DecisionHandler

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	config.ConfigureLogging(cfg.Logging)

	serverless := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"function": serverless.FunctionName,
		"region":   serverless.Region,
		"stage":    serverless.Stage,
		"model":    cfg.OpenAI.Model,
	}).Info("Initializing decide function")

	container, err := server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	decisionHandler = handlers.NewDecisionHandler(container.DecisionService)
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (response events.APIGatewayProxyResponse, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			logrus.WithField("panic", fmt.Sprint(recovered)).Error("Recovered from panic")
			response = errorEvent(fmt.Sprint(recovered))
			err = nil
		}
	}()

	// Convert API Gateway event to generic request
	req := &lambda.Request{
		Method:                event.HTTPMethod,
		Path:                  event.Path,
		Headers:               event.Headers,
		QueryParams:           event.QueryStringParameters,
		MultiValueQueryParams: event.MultiValueQueryStringParameters,
		Body:                  []byte(event.Body),
	}

	resp, err := decisionHandler.HandleDecide(ctx, req)
	if err != nil {
		return errorEvent(err.Error()), nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func errorEvent(detail string) events.APIGatewayProxyResponse {
	resp, err := lambda.JSONResponse(http.StatusInternalServerError, models.DetailedErrorResponse{
		Error:  "Server error",
		Detail: detail,
	})
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error":"Server error"}`,
		}
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}
}

func main() {
	awslambda.Start(handler)
}
