package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"przelewy/config"
	"przelewy/services"
)

func TestNewMongoClientAlwaysReturnsClient(t *testing.T) {
	conf := &config.Config{}
	conf.Mongo.Host = "127.0.0.1"
	conf.Mongo.Port = "27017"

	// construction never dials; callers decide with Mongo.Enabled whether
	// to build a client at all
	client, err := NewMongoClient(conf)
	require.NoError(t, err)
	require.NotNil(t, client)

	var database services.Database = client
	assert.NotNil(t, database)
}
