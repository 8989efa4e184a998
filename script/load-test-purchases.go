package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/gateway/identity"
	timeProvider "github.com/amirhossein-jamali/linkledger/internal/infrastructure/adapter/time"
)

// Scenario is one kind of purchase the workers pick from
type Scenario struct {
	Name          string
	Type          string
	Duration      string
	PlatformCount int
}

// TestResult contains metrics for a single request
type TestResult struct {
	User         string
	Scenario     string
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests int
	TotalTime     time.Duration
	ResponseTimes []time.Duration
	StatusCounts  map[int]int
	ErrorCounts   map[string]int
	ScenarioStats map[string]int
	Lock          sync.Mutex
}

var scenarios = []Scenario{
	{"voting 1w", "voting", "1w", 1},
	{"voting 4w", "voting", "4w", 1},
	{"giveaway 2w", "giveaway", "2w", 2},
	{"custom 3 platforms", "custom", "1w", 3},
}

var (
	votingContent = json.RawMessage(`{"contestantName":"Load Test","writeup":"Generated by the load test","imageUrl":"https://cdn.example.com/load.png"}`)
	titledContent = json.RawMessage(`{"title":"Load Test","writeup":"Generated by the load test","imageUrl":"https://cdn.example.com/load.png"}`)
)

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of purchases to attempt")
	emails := flag.String("u", "load1@example.com,load2@example.com", "Comma-separated list of user emails to spread purchases across")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	secret := flag.String("secret", os.Getenv("LL_AUTH_JWT_SECRET"), "JWT signing secret shared with the server")
	issuer := flag.String("issuer", os.Getenv("LL_AUTH_ISSUER"), "JWT issuer expected by the server")
	delayMs := flag.Int("delay", 0, "Delay between requests in milliseconds")
	flag.Parse()

	users := splitEmails(*emails)
	if len(users) == 0 || *secret == "" {
		fmt.Fprintln(os.Stderr, "at least one user and a JWT secret are required")
		os.Exit(2)
	}

	tokens, err := mintTokens(*secret, *issuer, users)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mint tokens:", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: 10 * time.Second}

	before := make(map[string]int64, len(users))
	for _, u := range users {
		if before[u], err = balance(client, *baseURL, tokens[u]); err != nil {
			fmt.Fprintf(os.Stderr, "read balance for %s: %v\n", u, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Purchasing links as %d users: %v\n", len(users), users)
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		StatusCounts:  make(map[int]int),
		ErrorCounts:   make(map[string]int),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, users, tokens, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for r := range results {
			stats.Lock.Lock()
			stats.ScenarioStats[r.Scenario]++
			if r.Error != nil {
				stats.ErrorCounts[r.Error.Error()]++
			} else {
				stats.StatusCounts[r.StatusCode]++
				stats.ResponseTimes = append(stats.ResponseTimes, r.ResponseTime)
			}
			stats.Lock.Unlock()
		}
	}()

	start := time.Now()
	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(start)

	printResults(stats)

	// A balance may only move down by what was actually charged; any
	// negative balance means two debits raced past the funds check.
	failed := false
	fmt.Println("\n----------------- BALANCES -----------------")
	for _, u := range users {
		after, err := balance(client, *baseURL, tokens[u])
		if err != nil {
			fmt.Printf("%-30s: error %v\n", u, err)
			failed = true
			continue
		}
		fmt.Printf("%-30s: %d -> %d\n", u, before[u], after)
		if after < 0 {
			failed = true
		}
	}
	if failed {
		fmt.Println("❌ balance check failed")
		os.Exit(1)
	}
	fmt.Println("✅ no balance went negative")
}

func worker(client *http.Client, baseURL string, delayMs int, users []string, tokens map[string]string,
	jobs <-chan int, results chan<- TestResult) {
	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		user := users[rand.Intn(len(users))]
		scenario := scenarios[rand.Intn(len(scenarios))]
		result := TestResult{User: user, Scenario: scenario.Name}

		payload, err := json.Marshal(map[string]any{
			"name":          "load " + scenario.Name,
			"type":          scenario.Type,
			"duration":      scenario.Duration,
			"platformCount": scenario.PlatformCount,
			"content":       contentFor(scenario.Type),
		})
		if err != nil {
			result.Error = err
			results <- result
			continue
		}

		req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/links", bytes.NewReader(payload))
		if err != nil {
			result.Error = err
			results <- result
			continue
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+tokens[user])

		start := time.Now()
		resp, err := client.Do(req)
		result.ResponseTime = time.Since(start)
		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			resp.Body.Close()
		}
		results <- result
	}
}

func contentFor(linkType string) json.RawMessage {
	if linkType == "voting" {
		return votingContent
	}
	return titledContent
}

func mintTokens(secret, issuer string, users []string) (map[string]string, error) {
	clock := timeProvider.NewRealTimeProvider()
	signer := identity.NewJWTVerifier(secret, issuer, clock)
	tokens := make(map[string]string, len(users))
	for _, email := range users {
		token, err := signer.Sign(identity.Claims{
			Email:    email,
			Username: strings.SplitN(email, "@", 2)[0],
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "load-" + email,
				IssuedAt:  jwt.NewNumericDate(clock.Now()),
				ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Hour)),
			},
		})
		if err != nil {
			return nil, err
		}
		tokens[email] = token
	}
	return tokens, nil
}

func balance(client *http.Client, baseURL, token string) (int64, error) {
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/v1/me", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("HTTP status code %d", resp.StatusCode)
	}
	var profile struct {
		Balance int64 `json:"balance"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return 0, err
	}
	return profile.Balance, nil
}

func splitEmails(raw string) []string {
	var out []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func printResults(stats *TestStats) {
	times := stats.ResponseTimes
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	var total time.Duration
	for _, t := range times {
		total += t
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f req/s\n", float64(len(times))/stats.TotalTime.Seconds())

	if len(times) > 0 {
		fmt.Println("\n----------------- RESPONSE TIMES -----------------")
		fmt.Printf("Average Response:    %v\n", total/time.Duration(len(times)))
		fmt.Printf("Minimum Response:    %v\n", times[0])
		fmt.Printf("Maximum Response:    %v\n", times[len(times)-1])
		fmt.Printf("P50 Response:        %v\n", times[len(times)*50/100])
		fmt.Printf("P95 Response:        %v\n", times[len(times)*95/100])
		fmt.Printf("P99 Response:        %v\n", times[len(times)*99/100])
	}

	// 201 is a purchase, 402 a refused one; anything else is worth a look
	fmt.Println("\n----------------- STATUS CODES -----------------")
	for code, count := range stats.StatusCounts {
		fmt.Printf("%d: %d\n", code, count)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for name, count := range stats.ScenarioStats {
		fmt.Printf("%-20s: %d\n", name, count)
	}

	if len(stats.ErrorCounts) > 0 {
		fmt.Println("\n----------------- TRANSPORT ERRORS -----------------")
		for msg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d\n", msg, count)
		}
	}
}
