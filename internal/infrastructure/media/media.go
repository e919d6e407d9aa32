package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/AsadUllahBilal/TechThrive/config"
	"github.com/AsadUllahBilal/TechThrive/pkg/errs"
	"github.com/AsadUllahBilal/TechThrive/pkg/httpclient"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Client uploads files to the external media host and hands back the
// durable URL it assigns. Calls run through a circuit breaker so a dead
// host fails fast instead of tying up upload requests.
type Client struct {
	uploadURL string
	apiKey    string
	cb        *gobreaker.CircuitBreaker[[]byte]
}

func CreateCircuitBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	var st gobreaker.Settings
	st.Name = name
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}

	return gobreaker.NewCircuitBreaker[[]byte](st)
}

func CreateMediaClient(config *config.Config, cb *gobreaker.CircuitBreaker[[]byte]) *Client {
	return &Client{
		uploadURL: config.MediaConfig.UploadURL,
		apiKey:    config.MediaConfig.APIKey,
		cb:        cb,
	}
}

func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(part, file); err != nil {
		return "", err
	}

	if err = writer.Close(); err != nil {
		return "", err
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(ctx, httpclient.HttpRequest{
			URL:    c.uploadURL,
			Method: http.MethodPost,
			Body:   buf.Bytes(),
			Headers: map[string]string{
				"Content-Type": writer.FormDataContentType(),
				"X-API-KEY":    c.apiKey,
			},
		})
		if err != nil {
			return nil, err
		}

		if statusCode != http.StatusOK && statusCode != http.StatusCreated {
			return nil, fmt.Errorf("media host returned non-OK status: %d", statusCode)
		}

		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return "", errs.ErrMediaHost
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err = json.Unmarshal(body, &resp); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return "", errs.ErrMediaHost
	}

	return resp.URL, nil
}
