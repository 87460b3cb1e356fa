// Package mock provides a test double for the semantic service interface.
//
// MockSemanticService lets tests run without an external model and with
// controlled, deterministic replies:
//
//	svc := mock.NewMockSemanticService()
//	svc.Reply = `{"matches": [...]}`
//
//	// or inject behavior
//	svc.GenerateFunc = func(ctx context.Context, instruction, payload string) (string, error) {
//	    return "", errors.New("service down")
//	}
//
//	// and assert on calls
//	count := svc.CallCount()
package mock
