/*
Copyright 2026 the Food API Test Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultFoodBaseURL is the collection base URI of a locally running food service.
	DefaultFoodBaseURL = "http://localhost:8080/api/food"
	// DefaultResetURL clears all server side session state.
	DefaultResetURL = "http://localhost:8080/api/data/reset"
)

type TestConfig struct {
	FoodBaseURL string
	ResetURL    string
	// RequestTimeout of zero leaves the transport defaults in place.
	RequestTimeout  time.Duration
	SkipIntegration bool
	UseFakeService  bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a configured URL is unusable.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		FoodBaseURL:     getStringWithDefault("FOOD_API_URL", DefaultFoodBaseURL),
		ResetURL:        getStringWithDefault("FOOD_RESET_URL", DefaultResetURL),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 0),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		UseFakeService:  getBoolWithDefault("FOOD_API_FAKE", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// getStringWithDefault gets a string from environment variable or returns default.
func getStringWithDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/food directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// Validate checks that every endpoint is an absolute http(s) URL.
func (c *TestConfig) Validate() error {
	var invalid []string

	required := map[string]string{
		"FOOD_API_URL":   c.FoodBaseURL,
		"FOOD_RESET_URL": c.ResetURL,
	}

	for envVar, value := range required {
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			invalid = append(invalid, envVar)
		}
	}

	if len(invalid) > 0 {
		slices.Sort(invalid)

		return fmt.Errorf("invalid configuration: %s must be absolute http(s) URLs", strings.Join(invalid, ", "))
	}

	return nil
}
