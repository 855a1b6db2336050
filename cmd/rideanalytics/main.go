package main

import "ride-analytics/internal/cli"

// @title Ride Analytics API
// @version 1.0
// @description Data-cleaning, filtering and aggregation engine for ride-hailing booking datasets.
// @BasePath /api/v1
func main() {
	cli.Execute()
}
