package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/HonorBot_Go/internal/config"
	"github.com/osse101/HonorBot_Go/internal/handler"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Query a running bot's ops server ([base-url], default localhost:OPS_PORT)"
}

func (c *HealthCheckCommand) Run(args []string) error {
	base := fmt.Sprintf("http://localhost:%s", getEnv("OPS_PORT", fmt.Sprint(config.DefaultOpsPort)))
	if len(args) > 0 {
		base = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", base))

	start := time.Now()
	resp, err := checkHealth(base)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if resp.Bot != nil {
		PrintInfo("Connected: %t, uptime %s, %d commands", resp.Bot.Connected, resp.Bot.Uptime, resp.Bot.CommandsReceived)
	}
	if duration > time.Second {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}
	return nil
}

func checkHealth(base string) (*handler.HealthResponse, error) {
	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(base + "/healthz")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body handler.HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode health response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &body, fmt.Errorf("status code %d (%s)", resp.StatusCode, body.Status)
	}
	return &body, nil
}
