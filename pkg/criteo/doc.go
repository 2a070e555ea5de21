// Package criteo provides types, interfaces, and helpers for working with
// the Criteo Retail Media API.
//
// # Overview
//
// The criteo package defines the domain types (e.g., Account, Campaign,
// LineItem, Balance, ReportStatus) and the interfaces for resource-oriented
// clients (e.g., AccountsClient, CampaignsClient). A concrete implementation
// is provided by the criteoclient package, which wires configuration,
// transport, and OAuth2 client-credentials authentication. Most consumers
// should import criteoclient to construct a client and then interact with
// the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/joepikowski/criteo-api-go-client/pkg/criteo"
//	  "github.com/joepikowski/criteo-api-go-client/pkg/criteoclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := criteoclient.NewWithClientCredentials(ctx, "client-id", "client-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  accounts, err := cli.Accounts().List(ctx, criteo.NewQueryParams().WithPageSize(50))
//	  if err != nil { log.Fatal(err) }
//	  _ = accounts
//	}
//
// Every call ensures a bearer token is present before executing, and a call
// rejected with 401 is replayed exactly once after re-authenticating. Token
// acquisition and the single replay are transparent to callers.
//
// # Errors
//
// Non-2xx responses surface as *APIError carrying the HTTP status code and
// the raw body. Helpers such as IsNotFound, IsUnauthorized, and IsForbidden
// make it easy to branch on common cases.
//
// # Reports and catalogs
//
// Analytics reports and catalog exports are asynchronous: request one, poll
// its status, then fetch the output as text or download it to a file.
// ReportsClient.WaitForReport wraps the polling loop.
package criteo
