// Command smoke probes a running course-service instance and verifies that
// every resource listing responds with a well-formed paginated envelope.
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

type listEnvelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	Total      int             `json:"total"`
	TotalPages int             `json:"totalPages"`
}

var resources = []string{
	"courses", "sections", "categories", "enrollments",
	"lessons", "lesson-resources", "lesson-progress",
	"quizzes", "quiz-questions", "question-options",
	"quiz-submissions", "submission-answers",
	"tags", "course-tags",
	"comments", "reviews", "certificates",
}

func main() {
	var (
		base    string
		prefix  string
		timeout time.Duration
	)
	flag.StringVar(&base, "base", "http://localhost:8080", "service base URL")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API prefix")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "per-request timeout")
	flag.Parse()

	client := &http.Client{Timeout: timeout}
	failures := 0

	if err := probeHealth(client, base); err != nil {
		fmt.Fprintf(os.Stderr, "FAIL health: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("ok   health")

	for _, resource := range resources {
		url := base + prefix + "/" + resource + "?page=1&size=1"
		if err := probeList(client, url); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "FAIL %-20s %v\n", resource, err)
			continue
		}
		fmt.Printf("ok   %s\n", resource)
	}

	if failures > 0 {
		fmt.Fprintf(os.Stderr, "%d resource(s) failed\n", failures)
		os.Exit(1)
	}
	fmt.Println("all resources healthy")
}

func probeHealth(client *http.Client, base string) error {
	resp, err := client.Get(base + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}

func probeList(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %d: %s", resp.StatusCode, truncate(body))
	}

	var envelope listEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("malformed envelope: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("success=false in %s", truncate(body))
	}
	if envelope.Page < 1 || envelope.Size < 1 {
		return fmt.Errorf("bad pagination metadata page=%d size=%d", envelope.Page, envelope.Size)
	}
	return nil
}

func truncate(b []byte) string {
	const max = 200
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
