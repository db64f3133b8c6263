package publisher

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/loganlanou/dealerpost/internal/social"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwitter_PublishSimulatedWithoutToken(t *testing.T) {
	tw := NewTwitter("http://127.0.0.1:1", "")

	res, err := tw.Publish(context.Background(), Credentials{}, "merhaba")
	require.NoError(t, err)
	assert.True(t, res.Simulated)
	assert.Equal(t, "simulated_tweet_id_123", res.ExternalID)
	assert.Equal(t, "https://twitter.com/user/status/simulated_tweet_id_123", res.URL)
}

func TestTwitter_Publish(t *testing.T) {
	var gotAuth string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2/tweets", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"1800","text":"merhaba"}}`))
	}))
	defer srv.Close()

	tw := NewTwitter(srv.URL, "global")
	res, err := tw.Publish(context.Background(), Credentials{AccessToken: "user-token"}, "merhaba")
	require.NoError(t, err)

	assert.Equal(t, "Bearer user-token", gotAuth)
	assert.Equal(t, "merhaba", gotBody["text"])
	assert.Equal(t, "1800", res.ExternalID)
	assert.Equal(t, "https://twitter.com/user/status/1800", res.URL)
	assert.False(t, res.Simulated)
}

func TestTwitter_PublishFallsBackToDefaultToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data":{"id":"7"}}`))
	}))
	defer srv.Close()

	_, err := NewTwitter(srv.URL, "global").Publish(context.Background(), Credentials{}, "x")
	require.NoError(t, err)
	assert.Equal(t, "Bearer global", gotAuth)
}

func TestTwitter_PublishAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"title":"Forbidden"}`, http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewTwitter(srv.URL, "tok").Publish(context.Background(), Credentials{}, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error 403")
}

func TestTwitter_Metrics(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2/tweets/1800", r.URL.Path)
		assert.Equal(t, "public_metrics", r.URL.Query().Get("tweet.fields"))
		_, _ = w.Write([]byte(`{"data":{"id":"1800","public_metrics":{"retweet_count":3,"reply_count":1,"like_count":10,"quote_count":0,"impression_count":400}}}`))
	}))
	defer srv.Close()

	m, err := NewTwitter(srv.URL, "tok").Metrics(context.Background(), Credentials{}, "1800")
	require.NoError(t, err)
	assert.EqualValues(t, 10, m.Likes)
	assert.EqualValues(t, 3, m.Retweets)
	assert.EqualValues(t, 400, m.Impressions)
	assert.EqualValues(t, 14, m.Engagement())
}

func TestTwitter_MetricsSimulated(t *testing.T) {
	m, err := NewTwitter("", "").Metrics(context.Background(), Credentials{}, "abc")
	require.NoError(t, err)
	assert.Equal(t, Metrics{
		ExternalID: "abc", Retweets: 5, Likes: 23, Replies: 2, Quotes: 1, Impressions: 150, CollectedAt: m.CollectedAt,
	}, m)
}

func TestSet_For(t *testing.T) {
	tw := NewTwitter("", "")
	set := Set{social.PlatformTwitter: tw}

	got, err := set.For(social.PlatformTwitter)
	require.NoError(t, err)
	assert.Same(t, tw, got)

	_, err = set.For(social.PlatformInstagram)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
	_, err = set.For(social.PlatformTikTok)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)
}
