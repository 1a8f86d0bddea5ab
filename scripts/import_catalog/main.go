// Command import_catalog uploads a catalog CSV to a running planner API.
// Useful for seeding a fresh environment from a term export.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type importSummary struct {
	Data struct {
		Imported int `json:"imported"`
		Skipped  int `json:"skipped"`
	} `json:"data"`
}

func main() {
	var (
		baseURL string
		csvPath string
		prefix  string
		timeout time.Duration
	)

	flag.StringVar(&baseURL, "base", "http://localhost:8080", "Planner API base URL")
	flag.StringVar(&csvPath, "file", "catalog.csv", "Path to the catalog CSV file")
	flag.StringVar(&prefix, "prefix", "/api/v1", "API prefix")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "HTTP client timeout")
	flag.Parse()

	body, contentType, err := buildUpload(csvPath)
	if err != nil {
		log.Fatalf("failed to read catalog file: %v", err)
	}

	client := &http.Client{Timeout: timeout}
	url := baseURL + prefix + "/courses/import"
	resp, err := client.Post(url, contentType, body)
	if err != nil {
		log.Fatalf("upload failed: %v", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("failed to read response: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("upload rejected (%d): %s", resp.StatusCode, payload)
	}

	var summary importSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		log.Fatalf("unexpected response: %v", err)
	}
	fmt.Printf("Imported %d courses, skipped %d rows\n", summary.Data.Imported, summary.Data.Skipped)
	if summary.Data.Imported == 0 {
		os.Exit(1)
	}
}

func buildUpload(path string) (io.Reader, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}
