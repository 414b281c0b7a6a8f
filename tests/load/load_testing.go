package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8081" // e2e окружение
	rps        = 5
	duration   = 3 * time.Minute
)

var specializations = []string{"CARDIO", "YOGA", "STRENGTH", "STRETCHING", "ZUMBA", "RESISTANCE"}

type TrainerCreateRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization"`
}

type TrainerCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var (
	trainers []TrainerCredentials
	httpc    = &http.Client{Timeout: 10 * time.Second}
)

func createTrainer(req TrainerCreateRequest) (TrainerCredentials, error) {
	b, _ := json.Marshal(req)
	resp, err := httpc.Post(targetHost+"/trainer/add", "application/json", bytes.NewBuffer(b))
	if err != nil {
		return TrainerCredentials{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return TrainerCredentials{}, fmt.Errorf("trainer/add returned %d", resp.StatusCode)
	}

	var creds TrainerCredentials
	if err := json.NewDecoder(resp.Body).Decode(&creds); err != nil {
		return TrainerCredentials{}, err
	}
	return creds, nil
}

// Seed
func seedData() error {
	log.Println("Seeding: creating trainers...")

	for i := 1; i <= 100; i++ {
		creds, err := createTrainer(TrainerCreateRequest{
			FirstName:      "Load",
			LastName:       fmt.Sprintf("Trainer%03d", i),
			Specialization: specializations[i%len(specializations)],
		})
		if err != nil {
			log.Printf("WARN %v\n", err)
			continue
		}

		trainers = append(trainers, creds)
		time.Sleep(15 * time.Millisecond)
	}

	if len(trainers) == 0 {
		return fmt.Errorf("no trainers created")
	}

	log.Printf("Seed completed: trainers=%d\n", len(trainers))
	return nil
}

func authHeader(creds TrainerCredentials, extra map[string][]string) http.Header {
	h := http.Header{"X-Password": {creds.Password}}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()
		creds := trainers[rand.Intn(len(trainers))]
		query := "?username=" + url.QueryEscape(creds.Username)

		// 60% GET trainer/get
		if r < 0.60 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/trainer/get" + query
			t.Body = nil
			t.Header = authHeader(creds, map[string][]string{"Accept": {"application/json"}})
			return nil
		}

		// 30% GET trainer/unassigned
		if r < 0.90 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/trainer/unassigned" + query
			t.Body = nil
			t.Header = authHeader(creds, map[string][]string{"Accept": {"application/json"}})
			return nil
		}

		// 7% POST trainer/update
		if r < 0.97 {
			body, _ := json.Marshal(map[string]interface{}{
				"first_name":     "Load",
				"last_name":      "Updated",
				"specialization": specializations[rand.Intn(len(specializations))],
				"is_active":      true,
			})
			t.Method = http.MethodPost
			t.URL = targetHost + "/trainer/update" + query
			t.Body = body
			t.Header = authHeader(creds, map[string][]string{"Content-Type": {"application/json"}})
			return nil
		}

		// 3% POST trainer/add
		body, _ := json.Marshal(TrainerCreateRequest{
			FirstName:      "Load",
			LastName:       fmt.Sprintf("New%d", time.Now().UnixNano()),
			Specialization: specializations[rand.Intn(len(specializations))],
		})
		t.Method = http.MethodPost
		t.URL = targetHost + "/trainer/add"
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
