package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"
)

var routes = []string{
	"sh_user",
	"sh_user_token",
	"sh_device",
	"sh_sensor",
	"sh_sensor_type",
	"sh_datapoint_list",
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "service base URL")
	key := flag.String("key", "1", "key to look up on every route")
	flag.Parse()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(*baseURL + "/")
	if err != nil {
		panic(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	fmt.Println("GET / status:", resp.Status, "body:", string(body))

	for _, route := range routes {
		url := fmt.Sprintf("%s/%s/%s/", *baseURL, route, *key)
		resp, err := client.Get(url)
		if err != nil {
			panic(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("GET /%s/%s/ status: %s\n%s\n\n", route, *key, resp.Status, body)
	}
}
