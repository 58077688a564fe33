package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultAvatarFetchTimeout bounds one avatar download
const DefaultAvatarFetchTimeout = 5 * time.Second

// AvatarFetcher downloads avatars from Discord's CDN
type AvatarFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewAvatarFetcher creates a fetcher. A nil client uses http.DefaultClient.
func NewAvatarFetcher(client *http.Client, timeout time.Duration) *AvatarFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultAvatarFetchTimeout
	}
	return &AvatarFetcher{client: client, timeout: timeout}
}

// Fetch returns the image bytes, refusing bodies larger than maxAvatarBytes
func (f *AvatarFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchAvatar, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchAvatar, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(ErrMsgAvatarStatus, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAvatarBytes+1))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchAvatar, err)
	}
	if len(data) > maxAvatarBytes {
		return nil, fmt.Errorf(ErrMsgAvatarTooLarge, maxAvatarBytes)
	}
	return data, nil
}
