// Package gatesdk provides a Go client for the demo gate service.
//
// The SDK mirrors the service's HTTP surface: unauthenticated operations
// (invite-code login, health probes) hang off Client, invited-user
// operations hang off Session, and operator-only operations hang off
// AdminSession.
//
// Basic usage:
//
//	client := gatesdk.NewClient("http://localhost:8080")
//	session, err := client.Login(ctx, inviteCode)
//	if err != nil {
//		// *gatesdk.APIError carries the status code and redirect hint
//	}
//	defer session.Logout(ctx)
//
//	findings, err := session.Contradictions(ctx)
//
// The request and response types in this package are shared with the
// service's HTTP handlers so the wire format is defined in one place.
package gatesdk
