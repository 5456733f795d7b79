// scripts/msgraph-auth/main.go
//
// Run this ONCE locally to authorize Microsoft 365 calendar access via the
// OAuth device code flow and generate msgraph-token.json.
//
// Usage:
//   go run scripts/msgraph-auth/main.go <tenant-id> <client-id>

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"timeclerk/pkg/msgraph"
)

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("usage: %s <tenant-id> <client-id>", os.Args[0])
	}
	tenantID, clientID := os.Args[1], os.Args[2]

	ctx := context.Background()
	config := msgraph.OAuth2Config(tenantID, clientID)

	resp, err := config.DeviceAuth(ctx)
	if err != nil {
		log.Fatalf("Failed to start device authorization: %v", err)
	}

	fmt.Println("=================================================================")
	fmt.Printf("STEP 1: Open %s in a browser\n", resp.VerificationURI)
	fmt.Printf("STEP 2: Enter the code: %s\n", resp.UserCode)
	fmt.Println("=================================================================")
	fmt.Println("Waiting for authorization...")

	tok, err := config.DeviceAccessToken(ctx, resp)
	if err != nil {
		log.Fatalf("Failed to obtain token: %v", err)
	}

	tokenPath := "msgraph-token.json"
	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write token: %v", err)
	}

	fmt.Println()
	fmt.Printf("%s saved. Point msgraph.token_file at it in config.yaml.\n", tokenPath)
}
