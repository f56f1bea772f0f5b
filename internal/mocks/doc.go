// Package mocks provides centralized mock implementations for testing.
//
// Store mocks come in two flavours: testify-based mocks (TestifyMockUserStore,
// TestifyMockPlaceStore) for asserting exact calls, and MockUserStore, an
// in-memory store for tests that care about resulting state. Service and
// collaborator mocks use function fields with default return values.
//
// Usage:
//
//	import "github.com/RoxyKang/share-my-place-backend/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtSvc := &mocks.MockJWTService{Token: "mocked-token"}
//	    // Use the mock in your test...
//	}
package mocks
