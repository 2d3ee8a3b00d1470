package main

import (
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

// record is the table item written for every proxied request.
type record struct {
	ID         string `dynamodbav:"id"`
	Method     string `dynamodbav:"method"`
	Path       string `dynamodbav:"path"`
	Body       string `dynamodbav:"body"`
	SourceIP   string `dynamodbav:"source_ip"`
	ReceivedAt string `dynamodbav:"received_at"`
}

func newRecord(req events.APIGatewayProxyRequest) record {
	return record{
		ID:         uuid.NewString(),
		Method:     req.HTTPMethod,
		Path:       req.Path,
		Body:       req.Body,
		SourceIP:   req.RequestContext.Identity.SourceIP,
		ReceivedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
