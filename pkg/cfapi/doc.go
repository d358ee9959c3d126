// Package cfapi provides types, interfaces, and helpers for working with the
// Cloudflare v4 API.
//
// # Overview
//
// The cfapi package defines the domain types (e.g., Zone, DNSRecord,
// R2Bucket, AuditLog) and the interfaces for resource-oriented clients
// (e.g., ZonesClient, DNSClient, R2Client). A concrete implementation is
// provided by the cfclient package, which wires configuration, transport,
// and credentials. Most consumers should import cfclient to construct a
// client and then interact with the resource interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Alos-no/cfapi/pkg/cfapi"
//	  "github.com/Alos-no/cfapi/pkg/cfclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := cfclient.NewWithToken(ctx, "api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  zones, _, err := cli.Zones().List(ctx, nil, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = zones
//	}
//
// # Envelopes and errors
//
// Every v4 response is a uniform envelope: a success flag, an ordered error
// list, messages, a result payload, and optional pagination metadata. The
// package decodes envelopes into exactly one of three failure kinds, never
// conflated: HTTPError for any non-2xx status (the body need not parse),
// ResponseError for a 2xx status whose envelope reports success=false, and
// DecodeError for bodies that cannot be parsed at all. Helpers such as
// IsNotFound, IsRateLimited, and HasErrorCode make it easy to branch on
// common cases, e.g. to drive a caller-side retry policy.
//
// # Pagination
//
// Two incompatible pagination styles hide behind one Iterator contract:
// offset pages (page/per_page/total_pages) and opaque cursors. Iterators are
// lazy and forward-only, fetch one page ahead at most, and surface any
// failure from the step it occurred in:
//
//	it := cli.DNS().Iterate(ctx, zoneID, nil, 100)
//	for it.HasNext() {
//	  record, err := it.Next()
//	  if err != nil { break }
//	  _ = record
//	}
//
// # Open enums
//
// String-valued fields whose value sets grow server-side are typed as Enum:
// known values are named constants, unknown literals decode and round-trip
// verbatim, and comparison is case-insensitive.
package cfapi
