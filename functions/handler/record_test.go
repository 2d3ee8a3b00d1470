package main

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
)

func TestNewRecordMapsRequestFields(t *testing.T) {
	req := events.APIGatewayProxyRequest{
		HTTPMethod: "POST",
		Path:       "/orders",
		Body:       `{"sku":"a-1"}`,
	}
	req.RequestContext.Identity.SourceIP = "198.51.100.7"

	r := newRecord(req)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "POST", r.Method)
	assert.Equal(t, "/orders", r.Path)
	assert.Equal(t, `{"sku":"a-1"}`, r.Body)
	assert.Equal(t, "198.51.100.7", r.SourceIP)
	assert.NotEmpty(t, r.ReceivedAt)
}

func TestNewRecordAssignsUniqueIds(t *testing.T) {
	a := newRecord(events.APIGatewayProxyRequest{})
	b := newRecord(events.APIGatewayProxyRequest{})
	assert.NotEqual(t, a.ID, b.ID)
}
