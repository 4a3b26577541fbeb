// Package mocks provides centralized mock implementations for testing.
//
// The mocks stand in for the collaborators a schedule draft talks to: the
// preview lookup and the submission boundary. Two styles are available:
//
//   - MockPreviewResolver embeds testify's mock.Mock for expectation-based tests
//   - MockSubmitter uses function fields and call tracking
//
// Usage:
//
//	import "github.com/phrazzld/scry-schedule/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    submitter := &mocks.MockSubmitter{
//	        SubmitScheduleFn: func(ctx context.Context, s domain.Schedule) error {
//	            return nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
