package feedback

import (
	"context"
	"fmt"
	"os"

	"medassist/config"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// RowAppender accepts one feedback row. The HTTP surface depends on this
// interface so tests can substitute the spreadsheet backend.
type RowAppender interface {
	Append(ctx context.Context, rating, comments string) error
}

// Sheet appends feedback rows to a pre-existing Google Sheet using a
// service-account credential.
type Sheet struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewSheet creates a Sheet appender. When spreadsheetID is empty the
// spreadsheet is resolved by name through the Drive API, matching how the
// sheet is shared with the service account.
func NewSheet(ctx context.Context, serviceAccountFile, sheetName, spreadsheetID string) (*Sheet, error) {
	data, err := os.ReadFile(serviceAccountFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope, drive.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account: %w", err)
	}

	client := jwtConfig.Client(ctx)

	if spreadsheetID == "" {
		if sheetName == "" {
			return nil, fmt.Errorf("feedback sheet requires a spreadsheet name or ID")
		}
		driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
		if err != nil {
			return nil, fmt.Errorf("unable to create drive service: %w", err)
		}
		spreadsheetID, err = resolveSpreadsheetID(driveService, sheetName)
		if err != nil {
			return nil, err
		}
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return &Sheet{service: service, spreadsheetID: spreadsheetID}, nil
}

// NewSheetFromEnv creates a Sheet from GOOGLE_SERVICE_ACCOUNT_FILE,
// GOOGLE_SHEET_NAME and optionally GOOGLE_SHEET_ID.
func NewSheetFromEnv(ctx context.Context) (*Sheet, error) {
	file := os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE")
	if file == "" {
		file = "service-account.json"
	}
	return NewSheet(ctx, file, os.Getenv("GOOGLE_SHEET_NAME"), os.Getenv("GOOGLE_SHEET_ID"))
}

// resolveSpreadsheetID finds the spreadsheet the service account can see
// under the given name.
func resolveSpreadsheetID(service *drive.Service, name string) (string, error) {
	query := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false", name)
	list, err := service.Files.List().Q(query).Fields("files(id, name)").PageSize(1).Do()
	if err != nil {
		return "", fmt.Errorf("unable to look up spreadsheet %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("spreadsheet %q not found or not shared with the service account", name)
	}
	return list.Files[0].Id, nil
}

// Append adds one (rating, comments) row to the first sheet.
func (s *Sheet) Append(ctx context.Context, rating, comments string) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{rating, comments}},
	}

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, config.DefaultSheetRange, values).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append feedback row: %w", err)
	}
	return nil
}
