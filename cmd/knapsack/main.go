// Command knapsack solves knapsack instances from positional arguments,
// request files, batches, or over HTTP.
//
// Usage:
//
//	knapsack solve 01 10 4 2,3 3,4 4,5 5,6
//	knapsack solve --view kth 10 3 4 2,3 3,4 4,5 5,6
//	knapsack run -f request.json
//	knapsack batch -f batch.yaml
//	knapsack serve --addr :8080
//	knapsack variants
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
