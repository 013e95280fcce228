package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		TrackOnStart bool   `json:"track_on_start"`
		Simulate     bool   `json:"simulate"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Sampler struct {
		MinFixInterval            Duration `json:"min_fix_interval"`
		MaxAccuracy               float64  `json:"max_accuracy"`
		PollInterval              Duration `json:"poll_interval"`
		DisableSignificantChanges bool     `json:"disable_significant_changes"`
	} `json:"sampler,omitempty"`

	Capture struct {
		MaxClipDuration Duration `json:"max_clip_duration"`
	} `json:"capture,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		FeedInterval Duration `json:"feed_interval"`
	} `json:"workers,omitempty"`
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
			TrackOnStart: jsonCfg.App.TrackOnStart,
			Simulate:     jsonCfg.App.Simulate,
			Version:      jsonCfg.App.Version,
		},
		Sampler: Sampler{
			MinFixInterval:            time.Duration(jsonCfg.Sampler.MinFixInterval),
			MaxAccuracy:               jsonCfg.Sampler.MaxAccuracy,
			PollInterval:              time.Duration(jsonCfg.Sampler.PollInterval),
			DisableSignificantChanges: jsonCfg.Sampler.DisableSignificantChanges,
		},
		Capture: Capture{
			MaxClipDuration: time.Duration(jsonCfg.Capture.MaxClipDuration),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BlobDir: jsonCfg.Storage.Files.BlobDir,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			FeedInterval: time.Duration(jsonCfg.Workers.FeedInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "5m", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
