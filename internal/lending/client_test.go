package lending

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LoanPopularity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/loanItemSrch", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("authKey"))
		assert.Equal(t, "0", r.URL.Query().Get("age"))
		assert.Equal(t, "50", r.URL.Query().Get("pageSize"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))

		_, _ = w.Write([]byte(`{
			"response": {
				"docs": [
					{"doc": {"bookname": "달님 안녕", "authors": "하야시 아키코", "publisher": "한림출판사", "isbn13": "9788970940496", "loan_count": "1543", "ranking": "1"}},
					{"doc": {"bookname": "사과가 쿵!", "authors": "다다 히로시", "publisher": "보림", "isbn13": "9788943301231", "loan_count": "invalid", "ranking": "2"}}
				]
			}
		}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	docs, err := client.LoanPopularity(context.Background(), Bracket0to5, 50)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, LoanDoc{
		ISBN13:    "9788970940496",
		Title:     "달님 안녕",
		Author:    "하야시 아키코",
		Publisher: "한림출판사",
		LoanCount: 1543,
		Ranking:   1,
	}, docs[0])

	// Unparseable counts degrade to zero instead of failing the batch.
	assert.Equal(t, 0, docs[1].LoanCount)
}

func TestClient_LoanPopularity_upstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient("test-key")
	client.SetBaseURL(server.URL)

	_, err := client.LoanPopularity(context.Background(), Bracket8to13, 10)
	require.Error(t, err)
}
