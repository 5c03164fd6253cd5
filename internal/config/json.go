package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the
// optional JSON configuration file.
type StructuredJSONConfig struct {
	App struct {
		EncryptionKey          string   `json:"encryption_key"`
		PreviousEncryptionKeys []string `json:"previous_encryption_keys"`
		TokenSignKey           string   `json:"token_sign_key"`
		TokenIssuer            string   `json:"token_issuer"`
		TokenDuration          Duration `json:"token_duration"`
		SecretHashKey          string   `json:"secret_hash_key"`
		OTPTTL                 Duration `json:"otp_ttl"`
		ResetTokenTTL          Duration `json:"reset_token_ttl"`
		ResetURL               string   `json:"reset_url"`
		PasswordCost           int      `json:"password_cost"`
		Production             bool     `json:"production"`
		Version                string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		Mail struct {
			APIURL   string   `json:"api_url"`
			APIToken string   `json:"api_token"`
			Timeout  Duration `json:"timeout"`
			SMTPHost string   `json:"smtp_host"`
			SMTPPort int      `json:"smtp_port"`
			Username string   `json:"username"`
			Password string   `json:"password"`
			From     string   `json:"from"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`

	Workers struct {
		MailQueueSize int `json:"mail_queue_size"`
		MailWorkers   int `json:"mail_workers"`
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
			EncryptionKey:          jsonCfg.App.EncryptionKey,
			PreviousEncryptionKeys: jsonCfg.App.PreviousEncryptionKeys,
			TokenSignKey:           jsonCfg.App.TokenSignKey,
			TokenIssuer:            jsonCfg.App.TokenIssuer,
			TokenDuration:          time.Duration(jsonCfg.App.TokenDuration),
			SecretHashKey:          jsonCfg.App.SecretHashKey,
			OTPTTL:                 time.Duration(jsonCfg.App.OTPTTL),
			ResetTokenTTL:          time.Duration(jsonCfg.App.ResetTokenTTL),
			ResetURL:               jsonCfg.App.ResetURL,
			PasswordCost:           jsonCfg.App.PasswordCost,
			Production:             jsonCfg.App.Production,
			Version:                jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			Mail: Mail{
				APIURL:   jsonCfg.Adapter.Mail.APIURL,
				APIToken: jsonCfg.Adapter.Mail.APIToken,
				Timeout:  time.Duration(jsonCfg.Adapter.Mail.Timeout),
				SMTPHost: jsonCfg.Adapter.Mail.SMTPHost,
				SMTPPort: jsonCfg.Adapter.Mail.SMTPPort,
				Username: jsonCfg.Adapter.Mail.Username,
				Password: jsonCfg.Adapter.Mail.Password,
				From:     jsonCfg.Adapter.Mail.From,
			},
		},
		Workers: Workers{
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
			MailWorkers:   jsonCfg.Workers.MailWorkers,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
