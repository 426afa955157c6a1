package calendar

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/sandevgo/lexibot/internal/core"
)

const tokenFileName = "token.json"

// resolveTokenSource finds a Google authorized-user credential. Order:
// the GOOGLE_CALENDAR_TOKEN env value (deployments), then token.json in the
// runtime directory (local use after an out-of-band login flow).
func resolveTokenSource(ctx context.Context, envToken, runtimePath string, scopes ...string) (oauth2.TokenSource, error) {
	if envToken != "" {
		creds, err := google.CredentialsFromJSON(ctx, []byte(envToken), scopes...)
		if err != nil {
			return nil, fmt.Errorf("GOOGLE_CALENDAR_TOKEN is invalid: %w", err)
		}
		return creds.TokenSource, nil
	}

	tokenFile := filepath.Join(runtimePath, tokenFileName)
	data, err := os.ReadFile(tokenFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrCredentialMissing
		}
		return nil, fmt.Errorf("read %s: %w", tokenFile, err)
	}

	creds, err := google.CredentialsFromJSON(ctx, data, scopes...)
	if err != nil {
		return nil, fmt.Errorf("%s is invalid: %w", tokenFile, err)
	}
	return creds.TokenSource, nil
}
