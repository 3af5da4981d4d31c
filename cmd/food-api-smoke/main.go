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
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ibs-qa/food-api-tests/test/api"
)

type options struct {
	name    string
	kind    string
	exotic  bool
	verbose bool
}

func (o *options) addFlags(f *pflag.FlagSet, config *api.TestConfig) {
	f.StringVar(&config.FoodBaseURL, "food-url", config.FoodBaseURL, "Food collection base URI.")
	f.StringVar(&config.ResetURL, "reset-url", config.ResetURL, "Data reset URI, called after every case.")
	f.DurationVar(&config.RequestTimeout, "timeout", config.RequestTimeout, "Per request timeout, 0 uses the transport defaults.")
	f.BoolVar(&config.LogResponses, "log-responses", config.LogResponses, "Log response bodies.")
	f.StringVar(&o.name, "name", "", "Run a single case adding an item with this name instead of the default cases.")
	f.StringVar(&o.kind, "type", string(api.FoodTypeVegetable), "Type of the single case item.")
	f.BoolVar(&o.exotic, "exotic", false, "Exotic flag of the single case item.")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "Log every step.")
}

func (o *options) scenarios() []api.Scenario {
	if o.name == "" {
		return api.DefaultScenarios()
	}

	return []api.Scenario{
		{
			Description: "command line case",
			Item: api.NewFoodItem().
				WithName(o.name).
				WithType(api.FoodType(o.kind)).
				WithExotic(o.exotic).
				Build(),
		},
	}
}

func run(ctx context.Context, o *options, config *api.TestConfig) error {
	zapConfig := zap.NewDevelopmentConfig()
	if !o.verbose {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	zapLog, err := zapConfig.Build()
	if err != nil {
		return err
	}

	defer func() { _ = zapLog.Sync() }()

	logger := zapr.NewLogger(zapLog).WithName("food-api-smoke")
	config.LogRequests = o.verbose

	harness := api.NewHarness(api.NewFoodClient(config, api.WithLogger(logger)), api.WithLogger(logger))

	// Cases share the service's global state, they run strictly one after another.
	for _, scenario := range o.scenarios() {
		if _, err := harness.RunAddFood(ctx, scenario.Item); err != nil {
			return fmt.Errorf("%s: %w", scenario.Description, err)
		}

		logger.Info("case passed", "case", scenario.Description)
	}

	return nil
}

func main() {
	config, err := api.LoadTestConfig()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	var o options

	o.addFlags(pflag.CommandLine, config)

	pflag.Parse()

	if err := config.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := run(context.Background(), &o, config); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
