package imagehost

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/azor-ahai1/SwapSpace/config"
	circuitbreaker "github.com/azor-ahai1/SwapSpace/internal/infrastructure/circuit-breaker"
	"github.com/azor-ahai1/SwapSpace/pkg/errs"
	"github.com/azor-ahai1/SwapSpace/pkg/httpclient"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// Uploader pushes an image to the external host and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (url string, err error)
}

type CloudinaryClient struct {
	config  config.CloudinaryConfig
	breaker *gobreaker.CircuitBreaker[[]byte]
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	URL       string `json:"url"`
}

func CreateCloudinaryClient(config config.CloudinaryConfig) Uploader {
	return &CloudinaryClient{
		config:  config,
		breaker: circuitbreaker.CreateCircuitBreaker("cloudinary"),
	}
}

func (c *CloudinaryClient) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	publicID := ulid.Make().String()
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	signature := c.signUpload(folder, publicID, timestamp)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", publicID)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}

	fields := map[string]string{
		"api_key":   c.config.APIKey,
		"timestamp": timestamp,
		"signature": signature,
		"folder":    folder,
		"public_id": publicID,
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", err
		}
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	respBody, err := c.breaker.Execute(func() ([]byte, error) {
		statusCode, respBody, err := httpclient.SendRequest(httpclient.HttpRequest{
			URL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", c.config.CloudName),
			Method: http.MethodPost,
			Body:   body.Bytes(),
			Headers: map[string]string{
				"Content-Type": writer.FormDataContentType(),
			},
		})
		if err != nil {
			return nil, err
		}
		if statusCode != http.StatusOK {
			return nil, fmt.Errorf("image host returned non-OK status: %d", statusCode)
		}
		return respBody, nil
	})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadImage").Msg("")
		return "", errs.ErrInternalServer
	}

	var uploadResp uploadResponse
	if err := json.Unmarshal(respBody, &uploadResp); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UploadImage").Msg("")
		return "", errs.ErrInternalServer
	}

	if uploadResp.SecureURL == "" {
		return uploadResp.URL, nil
	}

	return uploadResp.SecureURL, nil
}

// signUpload builds the SHA-1 signature over the sorted upload parameters,
// per the image host's signed-upload contract.
func (c *CloudinaryClient) signUpload(folder string, publicID string, timestamp string) string {
	payload := fmt.Sprintf("folder=%s&public_id=%s&timestamp=%s%s", folder, publicID, timestamp, c.config.APISecret)
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}
