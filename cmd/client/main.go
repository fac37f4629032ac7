package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"
)

// Hardcoded test profile - each run is independent
var testProfile = map[string]any{
	"fullName":       "Jordan Example",
	"expectedSalary": 62000,
	"preferredJobs":  []string{"nurse"},
	"interests":      []string{"food", "live music", "parks"},
	"familySize":     2,
	"monthlyDebt":    350,
	"housingBudget":  1500,
	"rentOrOwn":      "rent",
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "server base URL")
	flag.Parse()

	client := &http.Client{Timeout: 30 * time.Second}

	testHealthz(client, *baseURL)
	testRecommend(client, *baseURL)
	testMissingProfile(client, *baseURL)

	fmt.Println("\nAll tests completed")
}

func testHealthz(client *http.Client, baseURL string) {
	fmt.Println("\nTEST: healthz")

	resp, err := client.Get(baseURL + "/healthz")
	if err != nil {
		log.Fatalf("healthz failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	fmt.Printf("status: %d\n", resp.StatusCode)
	fmt.Println("healthz passed")
}

func testRecommend(client *http.Client, baseURL string) {
	fmt.Println("\nTEST: recommend")

	body, err := json.Marshal(map[string]any{"profile": testProfile})
	if err != nil {
		log.Fatalf("marshal profile: %v", err)
	}

	resp, err := client.Post(baseURL+"/api/recommend", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("recommend request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	fmt.Printf("status: %d\n", resp.StatusCode)
	printResult(resp)
	fmt.Println("recommend passed")
}

func testMissingProfile(client *http.Client, baseURL string) {
	fmt.Println("\nTEST: recommend without profile (edge case)")

	resp, err := client.Post(baseURL+"/api/recommend", "application/json", bytes.NewReader([]byte(`{}`)))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	fmt.Printf("status: %d (expected 400)\n", resp.StatusCode)
	printResult(resp)
	fmt.Println("missing-profile passed")
}

func printResult(resp *http.Response) {
	var payload any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("decode response: %v", err)
		return
	}

	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		log.Printf("format response: %v", err)
		return
	}

	fmt.Println(string(pretty))
}
