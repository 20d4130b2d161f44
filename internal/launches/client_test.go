package launches

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestClientQueryLaunches(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"docs":[
			{"id":"LAUNCH_A","date_unix":1518681600,"payloads":["PAY_P1"]},
			{"id":"LAUNCH_B","date_unix":1519862340,"payloads":[{"id":"PAY_P2","mass_kg":120.5}]}
		]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	filter := bson.M{"date_unix": bson.M{"$gte": int64(1517443200), "$lt": int64(1519862400)}}

	docs, err := client.QueryLaunches(context.Background(), QueryRequest{
		Query:   filter,
		Options: heaviestOptions(),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/launches/query", gotPath)
	assert.Equal(t, "application/json", gotContentType)

	query, ok := gotBody["query"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, query, "date_unix")

	options, ok := gotBody["options"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, options["pagination"])
	assert.Contains(t, options, "populate")

	require.Len(t, docs, 2)
	assert.Equal(t, "LAUNCH_A", docs[0].ID)
	assert.Equal(t, []string{"PAY_P1"}, payloadIDs(docs[0].Payloads))
	assert.Equal(t, 120.5, totalMass(docs[1].Payloads))
}

func TestClientTrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, `{"docs":[]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second)
	_, err := client.QueryLaunches(context.Background(), QueryRequest{Query: bson.M{}, Options: listOptions()})
	require.NoError(t, err)
	assert.Equal(t, "/launches/query", gotPath)
}

func TestClientNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "too many requests", status: http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL, time.Second)
			docs, err := client.QueryLaunches(context.Background(), QueryRequest{Query: bson.M{}, Options: listOptions()})
			require.Error(t, err)
			assert.Nil(t, docs)
			assert.Contains(t, err.Error(), "api returned status")
		})
	}
}

func TestClientTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before use

	client := NewClient(server.URL, time.Second)
	docs, err := client.QueryLaunches(context.Background(), QueryRequest{Query: bson.M{}, Options: listOptions()})
	require.Error(t, err)
	assert.Nil(t, docs)
}

func TestClientMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"docs": not json`)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	docs, err := client.QueryLaunches(context.Background(), QueryRequest{Query: bson.M{}, Options: listOptions()})
	require.Error(t, err)
	assert.Nil(t, docs)
	assert.Contains(t, err.Error(), "failed to decode response")
}
