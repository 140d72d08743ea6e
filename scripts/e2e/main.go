package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"smarthome/internal/api"
	k "smarthome/internal/kafka"
)

// Steps:
// 1. Record the end offset of every partition of the lookup topic
// 2. Call every lookup route once for the given key
// 3. Read one event per call back from Kafka, starting at the recorded offsets
// 4. Compare each event's outcome with the HTTP response that was returned

var entities = []api.Entity{
	api.EntityUser,
	api.EntityUserToken,
	api.EntityDevice,
	api.EntitySensor,
	api.EntitySensorType,
	api.EntityDatapoint,
}

// outcomeFor classifies a lookup response. A not-found page is recognised by
// its message so the legacy 200 status is not mistaken for a match.
func outcomeFor(e api.Entity, status, notFoundStatus int, body string) string {
	switch {
	case status == notFoundStatus && body == e.NotFoundMessage():
		return k.OutcomeNotFound
	case status == http.StatusOK:
		return k.OutcomeFound
	default:
		return k.OutcomeError
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "entity_lookups", "lookup event topic")
	key := flag.String("key", "1", "key to look up on every route")
	notFoundStatus := flag.Int("not-found-status", http.StatusNotFound, "status the service answers misses with")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	brokerList := strings.Split(*brokers, ",")
	offsets, err := k.EndOffsets(ctx, brokerList[0], *topic)
	if err != nil {
		fmt.Printf("failed to read topic offsets: %v\n", err)
		os.Exit(1)
	}

	events := make(chan k.LookupEvent)
	for partition, offset := range offsets {
		reader, err := k.NewReader(brokerList, *topic, partition, offset)
		if err != nil {
			fmt.Printf("failed to create reader for partition %d: %v\n", partition, err)
			os.Exit(1)
		}
		defer reader.Close()
		go consume(ctx, reader, events)
	}

	expected := make(map[string]string, len(entities))
	client := &http.Client{Timeout: 5 * time.Second}
	for _, e := range entities {
		resp, err := client.Get(fmt.Sprintf("%s/%s/%s/", *baseURL, e.Name, *key))
		if err != nil {
			panic(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		expected[e.Name] = outcomeFor(e, resp.StatusCode, *notFoundStatus, string(body))
		fmt.Printf("GET /%s/%s/ -> %d\n", e.Name, *key, resp.StatusCode)
	}

	failed := false
	for range entities {
		var ev k.LookupEvent
		select {
		case ev = <-events:
		case <-ctx.Done():
			fmt.Printf("timed out waiting for events: %v\n", ctx.Err())
			os.Exit(1)
		}
		want, ok := expected[ev.Entity]
		switch {
		case !ok:
			fmt.Printf("unexpected entity in event: %+v\n", ev)
			failed = true
		case ev.Key != *key || ev.Outcome != want:
			fmt.Printf("MISMATCH %s: got key=%s outcome=%s, want key=%s outcome=%s\n", ev.Entity, ev.Key, ev.Outcome, *key, want)
			failed = true
		default:
			fmt.Printf("OK %s %s\n", ev.Entity, ev.Outcome)
		}
		delete(expected, ev.Entity)
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("All lookup events matched")
}

func consume(ctx context.Context, reader k.Reader, events chan<- k.LookupEvent) {
	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			return
		}
		var record k.StructuredConnectRecord
		if err := json.Unmarshal(m.Value, &record); err != nil {
			fmt.Printf("failed to decode event at offset %d: %v\n", m.Offset, err)
			continue
		}
		select {
		case events <- record.Payload:
		case <-ctx.Done():
			return
		}
	}
}
