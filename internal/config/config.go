// Package config はアプリケーション全体の設定を管理します。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Ticker はダッシュボードに表示する1銘柄の設定です。
type Ticker struct {
	Name   string `yaml:"name"`   // 表示名 (e.g. "NASDAQ 100")
	Symbol string `yaml:"symbol"` // ティッカーシンボル (e.g. "TQQQ")
}

// Config はアプリケーション全体の設定を保持します。
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Location struct {
		Name      string  `yaml:"name"`
		Latitude  float64 `yaml:"latitude"`
		Longitude float64 `yaml:"longitude"`
		Timezone  string  `yaml:"timezone"`
	} `yaml:"location"`
	Weather struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"weather"`
	Quotes struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"quotes"`
	News struct {
		BaseURL string `yaml:"base_url"`
		// ニュース検索時にレバレッジETFを原指数に置き換えるテーブル
		Substitutions map[string]string `yaml:"substitutions"`
		// 一次フィードが空だった場合のフォールバック先
		Fallbacks map[string]string `yaml:"fallbacks"`
		// Fallbacksに無い銘柄のフォールバック先
		DefaultFallback string `yaml:"default_fallback"`
	} `yaml:"news"`
	Gemini struct {
		APIKey string `yaml:"-"` // 環境変数からのみ読み込む
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
	Tickers []Ticker `yaml:"tickers"`
}

// Load はYAMLファイルから設定を読み込み、環境変数で上書きし、デフォルト値を補完します。
// ファイルが存在しない場合はデフォルト値のみで動作します。
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// 環境変数による上書き
	if v := os.Getenv("ALPHADESK_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	// APIキーはファイルには置かない。未設定でも起動は許可し、呼び出し時に失敗させる。
	cfg.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults は未設定の項目をデフォルト値で埋めます。
func applyDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Location.Name == "" {
		cfg.Location.Name = "NAMYANGJU"
		cfg.Location.Latitude = 37.56
		cfg.Location.Longitude = 127.36
	}
	if cfg.Location.Timezone == "" {
		cfg.Location.Timezone = "Asia/Seoul"
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.open-meteo.com"
	}
	if cfg.Quotes.BaseURL == "" {
		cfg.Quotes.BaseURL = "https://query1.finance.yahoo.com"
	}
	if cfg.News.BaseURL == "" {
		cfg.News.BaseURL = "https://finance.yahoo.com"
	}
	if cfg.News.Substitutions == nil {
		cfg.News.Substitutions = map[string]string{
			"TQQQ": "QQQ",
			"SOXL": "SOXX",
		}
	}
	if cfg.News.Fallbacks == nil {
		cfg.News.Fallbacks = map[string]string{
			"TQQQ": "MSFT",
		}
	}
	if cfg.News.DefaultFallback == "" {
		cfg.News.DefaultFallback = "NVDA"
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = []Ticker{
			{Name: "NASDAQ 100", Symbol: "TQQQ"},
			{Name: "SEMICONDUCTOR", Symbol: "SOXL"},
		}
	}
}
