package initializers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kenanpereira24-max/FULL-STACK-PROJECT-BACKEND/drive"
)

// InitDrive builds the external drive client from DRIVE_CREDENTIALS (inline
// JSON) or, failing that, the file named by DRIVE_CREDENTIALS_FILE. Returns
// (nil, nil) when neither is configured: the server runs with uploads
// disabled rather than refusing to start.
func InitDrive(ctx context.Context) (*drive.Client, error) {
	raw := os.Getenv("DRIVE_CREDENTIALS")
	if raw == "" {
		path := os.Getenv("DRIVE_CREDENTIALS_FILE")
		if path == "" {
			return nil, nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read drive credentials file: %w", err)
		}
		raw = string(data)
	}

	var creds drive.Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("parse drive credentials: %w", err)
	}

	return drive.NewClient(ctx, creds)
}
