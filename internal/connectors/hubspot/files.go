package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

const fileUploadPath = "/filemanager/api/v3/files/upload"

// uploadOptions is the JSON options blob sent with every upload: files
// stay private and are never deduplicated, so repeat runs re-upload.
var uploadOptions = map[string]string{
	"access":                      "PRIVATE",
	"duplicateValidationStrategy": "NONE",
	"duplicateValidationScope":    "EXACT_FOLDER",
}

// uploadResponse is the file manager upload response format.
type uploadResponse struct {
	Objects []struct {
		ID json.Number `json:"id"`
	} `json:"objects"`
}

// UploadFile uploads binary content to private file storage under the
// configured folder path, returning the storage file ID. The effective
// content type is application/pdf for exported Workspace documents,
// otherwise the original MIME type.
func (c *Client) UploadFile(ctx context.Context, name string, content []byte, mimeType string) (string, error) {
	body, contentType, err := buildUploadBody(name, content, mimeType, c.folderPath)
	if err != nil {
		return "", fmt.Errorf("build upload body: %w", err)
	}

	resp, err := c.post(ctx, fileUploadPath, contentType, body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", newStatusError(OpUploadFile, resp.StatusCode, respBody)
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if len(result.Objects) == 0 {
		return "", fmt.Errorf("upload response contains no objects")
	}

	return result.Objects[0].ID.String(), nil
}

// buildUploadBody assembles the multipart form: fileName, file (binary
// with its effective content type), folderPath and the options blob.
func buildUploadBody(name string, content []byte, mimeType, folderPath string) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("fileName", name); err != nil {
		return nil, "", err
	}

	fileHeader := make(textproto.MIMEHeader)
	fileHeader.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(name)))
	fileHeader.Set("Content-Type", domain.EffectiveContentType(mimeType))
	filePart, err := w.CreatePart(fileHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err := filePart.Write(content); err != nil {
		return nil, "", err
	}

	if err := w.WriteField("folderPath", folderPath); err != nil {
		return nil, "", err
	}

	optionsJSON, err := json.Marshal(uploadOptions)
	if err != nil {
		return nil, "", err
	}
	optionsHeader := make(textproto.MIMEHeader)
	optionsHeader.Set("Content-Disposition", `form-data; name="options"`)
	optionsHeader.Set("Content-Type", "application/json")
	optionsPart, err := w.CreatePart(optionsHeader)
	if err != nil {
		return nil, "", err
	}
	if _, err := optionsPart.Write(optionsJSON); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
