// Command smoke exercises a running API instance and verifies that every
// public endpoint answers with a well-formed envelope. Intended for
// post-deploy checks; exits non-zero when a critical endpoint fails.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type target struct {
	Path     string
	Critical bool
}

var targets = []target{
	{Path: "/health", Critical: true},
	{Path: "/ready", Critical: true},
	{Path: "/api/v1/divisions", Critical: true},
	{Path: "/api/v1/divisions/Dhaka/districts", Critical: true},
	{Path: "/api/v1/timetable", Critical: true},
	{Path: "/api/v1/timetable/today", Critical: true},
	{Path: "/api/v1/timetable/share", Critical: false},
	{Path: "/api/v1/timetable/export?format=csv", Critical: false},
	{Path: "/api/v1/offers", Critical: false},
	{Path: "/api/v1/duas", Critical: false},
}

type result struct {
	Target   target
	Status   int
	Duration time.Duration
	Error    error
}

func main() {
	var (
		baseURL string
		timeout time.Duration
	)
	flag.StringVar(&baseURL, "base", "http://localhost:8080", "API base URL")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}
	failures := 0
	for _, tgt := range targets {
		res := check(client, baseURL, tgt)
		status := "ok"
		if res.Error != nil {
			status = res.Error.Error()
			if tgt.Critical {
				failures++
			}
		}
		fmt.Printf("%-45s %3d  %8s  %s\n", tgt.Path, res.Status, res.Duration.Round(time.Millisecond), status)
	}

	if failures > 0 {
		fmt.Printf("critical failures: %d\n", failures)
		os.Exit(1)
	}
}

func check(client *http.Client, baseURL string, tgt target) result {
	res := result{Target: tgt}
	start := time.Now()
	resp, err := client.Get(baseURL + tgt.Path)
	res.Duration = time.Since(start)
	if err != nil {
		res.Error = err
		return res
	}
	defer resp.Body.Close()

	res.Status = resp.StatusCode
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		res.Error = fmt.Errorf("read body: %w", err)
		return res
	}
	if resp.StatusCode != http.StatusOK {
		res.Error = fmt.Errorf("unexpected status %d", resp.StatusCode)
		return res
	}
	if ct := resp.Header.Get("Content-Type"); ct == "" {
		res.Error = fmt.Errorf("missing content type")
		return res
	}
	// File downloads and plain health checks are not enveloped.
	if json.Valid(body) && len(body) > 0 && body[0] == '{' {
		var envelope struct {
			Data  json.RawMessage `json:"data"`
			Error json.RawMessage `json:"error"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 && string(envelope.Error) != "null" {
			res.Error = fmt.Errorf("error payload: %s", envelope.Error)
		}
	}
	return res
}
