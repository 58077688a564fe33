package discord

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvatarFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write([]byte("image-bytes"))
		case "/big.png":
			_, _ = w.Write(bytes.Repeat([]byte{1}, maxAvatarBytes+1))
		case "/slow.png":
			time.Sleep(200 * time.Millisecond)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	f := NewAvatarFetcher(srv.Client(), 100*time.Millisecond)

	data, err := f.Fetch(context.Background(), srv.URL+"/ok.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.png")
	assert.ErrorContains(t, err, "status 404")

	_, err = f.Fetch(context.Background(), srv.URL+"/big.png")
	assert.Error(t, err)

	_, err = f.Fetch(context.Background(), srv.URL+"/slow.png")
	assert.Error(t, err)
}
