package upload

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/Astemirdum/notebook-loan-service/pkg/circuit_breaker"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultMaxSize = 10 << 20 // 10 MiB

type Config struct {
	URL     string        `yaml:"url" envconfig:"UPLOAD_URL"`
	Token   string        `yaml:"token" envconfig:"UPLOAD_TOKEN"`
	MaxSize int64         `yaml:"maxSize" envconfig:"UPLOAD_MAX_SIZE" default:"10485760"`
	Timeout time.Duration `yaml:"timeout" envconfig:"UPLOAD_TIMEOUT" default:"30s"`
}

var (
	ErrUnsupportedType = errors.New("only PDF, JPG or PNG files are accepted")
	ErrTooLarge        = errors.New("file is too large")
	ErrEmpty           = errors.New("file is empty")
)

var allowed = map[string]struct{}{
	"application/pdf": {},
	"image/jpeg":      {},
	"image/png":       {},
}

// CheckType sniffs the content, the client-declared type is not trusted.
func CheckType(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}
	mt := mimetype.Detect(data)
	for m := mt; m != nil; m = m.Parent() {
		if _, ok := allowed[m.String()]; ok {
			return m.String(), nil
		}
	}
	return mt.String(), ErrUnsupportedType
}

type File struct {
	Name string
	Data []byte
	MIME string
}

type Result struct {
	URL string `json:"url"`
}

type Client struct {
	http    *resty.Client
	cb      circuit_breaker.CircuitBreaker
	maxSize int64
	log     *zap.Logger
}

func NewClient(cfg Config, cb circuit_breaker.CircuitBreaker, log *zap.Logger) *Client {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	rc := resty.New().
		SetBaseURL(cfg.URL).
		SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}
	return &Client{
		http:    rc,
		cb:      cb,
		maxSize: maxSize,
		log:     log.Named("upload"),
	}
}

// Read drains r into a File after the local size and type checks.
func (c *Client) Read(name string, r io.Reader) (File, error) {
	data, err := io.ReadAll(io.LimitReader(r, c.maxSize+1))
	if err != nil {
		return File{}, err
	}
	if int64(len(data)) > c.maxSize {
		return File{}, ErrTooLarge
	}
	mime, err := CheckType(data)
	if err != nil {
		return File{}, err
	}
	return File{Name: name, Data: data, MIME: mime}, nil
}

type uploadResponse struct {
	FileURL string `json:"file_url"`
}

func (c *Client) Upload(ctx context.Context, f File) (Result, error) {
	if _, err := CheckType(f.Data); err != nil {
		return Result{}, err
	}
	var out uploadResponse
	err := c.cb.Call(func() error {
		resp, err := c.http.R().
			SetContext(ctx).
			SetMultipartField("file", f.Name, f.MIME, bytes.NewReader(f.Data)).
			SetResult(&out).
			Post("")
		if err != nil {
			return errors.Wrap(err, "upload request")
		}
		if resp.IsError() {
			return errors.Errorf("upload service: status %d", resp.StatusCode())
		}
		return nil
	})
	if err != nil {
		c.log.Error("Upload", zap.String("file", f.Name), zap.Error(err))
		return Result{}, err
	}
	if out.FileURL == "" {
		return Result{}, errors.New("upload service returned no url")
	}
	return Result{URL: out.FileURL}, nil
}
