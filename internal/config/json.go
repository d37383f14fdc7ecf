package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-upload-stager/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file. Durations are written as strings ("30s", "1m").
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Staging struct {
		Limit            int    `json:"limit"`
		Accept           string `json:"accept"`
		Multiple         bool   `json:"multiple"`
		Drag             bool   `json:"drag"`
		MaxFileSize      int64  `json:"max_file_size"`
		RejectionMessage string `json:"rejection_message"`
	} `json:"staging,omitempty"`

	Fetcher struct {
		Timeout   Duration `json:"timeout"`
		UserAgent string   `json:"user_agent"`
		MaxBytes  int64    `json:"max_bytes"`
		LocalRoot string   `json:"local_root"`
		S3        struct {
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			UsePathStyle    bool   `json:"use_path_style"`
		} `json:"s3,omitempty"`
	} `json:"fetcher,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxUploadSize  int64    `json:"max_upload_size"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionTTL    Duration `json:"session_ttl"`
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`

	Defaults []models.FileDescriptor `json:"defaults,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Staging: Staging{
			Limit:            jsonCfg.Staging.Limit,
			Accept:           jsonCfg.Staging.Accept,
			Multiple:         jsonCfg.Staging.Multiple,
			Drag:             jsonCfg.Staging.Drag,
			MaxFileSize:      jsonCfg.Staging.MaxFileSize,
			RejectionMessage: jsonCfg.Staging.RejectionMessage,
		},
		Fetcher: Fetcher{
			Timeout:   time.Duration(jsonCfg.Fetcher.Timeout),
			UserAgent: jsonCfg.Fetcher.UserAgent,
			MaxBytes:  jsonCfg.Fetcher.MaxBytes,
			LocalRoot: jsonCfg.Fetcher.LocalRoot,
			S3: S3{
				Region:          jsonCfg.Fetcher.S3.Region,
				Endpoint:        jsonCfg.Fetcher.S3.Endpoint,
				AccessKeyID:     jsonCfg.Fetcher.S3.AccessKeyID,
				SecretAccessKey: jsonCfg.Fetcher.S3.SecretAccessKey,
				UsePathStyle:    jsonCfg.Fetcher.S3.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxUploadSize:  jsonCfg.Server.MaxUploadSize,
		},
		Workers: Workers{
			SessionTTL:    time.Duration(jsonCfg.Workers.SessionTTL),
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
		Defaults: Descriptors(jsonCfg.Defaults),
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
