// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package hibp

import (
	"bufio"
	"crypto/sha1"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/context"

	"pwd-strength/pkg/strength"
)

const defaultBaseURL = "https://api.pwnedpasswords.com/range"

// The whole lookup is bounded by this, including retries. A slow corpus
// degrades the report to "unknown", it never hangs the analysis.
const lookupTimeout = 5 * time.Second

// How much of the hex digest is sent out. Everything after it stays local.
const prefixLen = 5

// Client queries the Pwned Passwords corpus by k-anonymity range: only the
// first 5 hex characters of the SHA1 digest ever leave the process, and the
// suffix comparison happens locally. Implements strength.BreachChecker.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	cache   *ristretto.Cache
}

func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

// NewClientWithBaseURL exists for tests and self-hosted corpus mirrors.
func NewClientWithBaseURL(baseURL string) *Client {
	// Range responses only change between corpus releases, so repeated
	// lookups of popular prefixes are served from memory.
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     32 << 20,
		BufferItems: 64,
	})
	if err != nil {
		log.Panic().Err(err).Msg("there is a programming error here.")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    initHttpClient(),
		cache:   cache,
	}
}

func initHttpClient() *retryablehttp.Client {
	client := retryablehttp.NewClient()
	// Too much garbage in the logs otherwise.
	client.Logger = nil

	// Retries stay inside the lookup deadline; the context cuts them off.
	client.RetryMax = 2
	client.RetryWaitMax = 1 * time.Second

	client.HTTPClient = &http.Client{
		Transport: &http.Transport{
			DisableCompression: false,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			DialContext: (&net.Dialer{
				Timeout:   lookupTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: lookupTimeout,
		},
	}

	return client
}

// Check implements strength.BreachChecker. Any transport, status or read
// failure returns an unknown result along with the error; it is never
// reported as "not found".
func (c *Client) Check(ctx context.Context, password string) (strength.BreachResult, error) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	prefix, suffix := digest[:prefixLen], digest[prefixLen:]

	body, err := c.rangeBody(ctx, prefix)
	if err != nil {
		return strength.BreachResult{Unknown: true}, err
	}

	scanner := bufio.NewScanner(strings.NewReader(body))
	for scanner.Scan() {
		candidate, countText, ok := strings.Cut(strings.TrimSpace(scanner.Text()), ":")
		if !ok {
			continue
		}
		if strings.EqualFold(candidate, suffix) {
			count, _ := strconv.ParseInt(strings.TrimSpace(countText), 10, 64)
			return strength.BreachResult{Found: true, Count: count}, nil
		}
	}
	if err = scanner.Err(); err != nil {
		return strength.BreachResult{Unknown: true}, err
	}

	return strength.BreachResult{}, nil
}

func (c *Client) rangeBody(ctx context.Context, prefix string) (string, error) {
	if cached, ok := c.cache.Get(prefix); ok {
		return cached.(string), nil
	}

	ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", c.baseURL, prefix), nil)
	if err != nil {
		return "", err
	}
	// This user agent string is identifying enough, I think...
	req.Header.Set("User-Agent", "golang-hibp-checker/1.0")

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}

	defer func(body io.ReadCloser) {
		if err = body.Close(); err != nil {
			log.Warn().Err(err).Msgf("error closing body for range %s", prefix)
		}
	}(res.Body)

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("range request for %s failed with status [%d] %s", prefix, res.StatusCode, res.Status)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	text := string(body)
	c.cache.Set(prefix, text, int64(len(text)))
	return text, nil
}
