package hubspot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/saran-io/gdrive-hub-integration/internal/core/ports/driven"
	"github.com/saran-io/gdrive-hub-integration/internal/logger"
)

const engagementsPath = "/engagements/v1/engagements"

// Ensure Client implements the port.
var _ driven.AttachmentUploader = (*Client)(nil)

// engagementRequest is the v1 engagements request format.
type engagementRequest struct {
	Engagement   engagementMeta         `json:"engagement"`
	Associations engagementAssociations `json:"associations"`
	Attachments  []engagementAttachment `json:"attachments"`
	Metadata     engagementNoteBody     `json:"metadata"`
}

type engagementMeta struct {
	Active bool   `json:"active"`
	Type   string `json:"type"`
	// Timestamp is epoch milliseconds.
	Timestamp int64 `json:"timestamp"`
}

type engagementAssociations struct {
	ContactIDs []string `json:"contactIds"`
}

type engagementAttachment struct {
	ID string `json:"id"`
}

type engagementNoteBody struct {
	Body string `json:"body"`
}

// engagementResponse is the v1 engagements response format.
type engagementResponse struct {
	Engagement struct {
		ID json.Number `json:"id"`
	} `json:"engagement"`
}

// CreateEngagement creates an active NOTE engagement timestamped at call
// time, attached to fileID and associated with contactID. Returns the
// engagement ID.
func (c *Client) CreateEngagement(ctx context.Context, fileID, contactID, noteBody string) (string, error) {
	reqBody, err := json.Marshal(engagementRequest{
		Engagement: engagementMeta{
			Active:    true,
			Type:      "NOTE",
			Timestamp: c.now().UnixMilli(),
		},
		Associations: engagementAssociations{
			ContactIDs: []string{contactID},
		},
		Attachments: []engagementAttachment{{ID: fileID}},
		Metadata:    engagementNoteBody{Body: noteBody},
	})
	if err != nil {
		return "", fmt.Errorf("marshal engagement request: %w", err)
	}

	resp, err := c.post(ctx, engagementsPath, "application/json", reqBody)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", newStatusError(OpCreateEngagement, resp.StatusCode, respBody)
	}

	var result engagementResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode engagement response: %w", err)
	}

	return result.Engagement.ID.String(), nil
}

// AttachFileToContact composes UploadFile and CreateEngagement. The note
// body comes from the configured template with {name} replaced by the
// file name. A failure in either step is returned for the caller to
// record as a per-recipient outcome.
func (c *Client) AttachFileToContact(ctx context.Context, name string, content []byte, mimeType, contactID string) error {
	fileID, err := c.UploadFile(ctx, name, content, mimeType)
	if err != nil {
		return fmt.Errorf("attach %s to contact %s: %w", name, contactID, err)
	}

	noteBody := strings.ReplaceAll(c.noteTemplate, "{name}", name)
	engagementID, err := c.CreateEngagement(ctx, fileID, contactID, noteBody)
	if err != nil {
		return fmt.Errorf("attach %s to contact %s: %w", name, contactID, err)
	}

	logger.Debug("created engagement %s for contact %s (file %s)", engagementID, contactID, fileID)
	return nil
}
