package main

import (
	"fmt"
	"os"

	"society-admin-svc/internal/apiclient"
	"society-admin-svc/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout, os.Stderr); err != nil {
		if apiErr, ok := apiclient.AsAPIError(err); ok && apiErr.Status != 0 {
			fmt.Fprintf(os.Stderr, "Error (%d): %s\n", apiErr.Status, apiErr.Message)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
