package hubspot

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saran-io/gdrive-hub-integration/internal/core/domain"
)

func TestUploadFile_MultipartFields(t *testing.T) {
	type part struct {
		contentType string
		value       string
	}
	parts := make(map[string]part)

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, fileUploadPath, r.URL.Path)

		reader, err := r.MultipartReader()
		require.NoError(t, err)
		for {
			p, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			data, err := io.ReadAll(p)
			require.NoError(t, err)
			parts[p.FormName()] = part{
				contentType: p.Header.Get("Content-Type"),
				value:       string(data),
			}
		}

		_, _ = w.Write([]byte(`{"objects": [{"id": 987654}]}`))
	}))

	fileID, err := client.UploadFile(context.Background(), "q1-forecast", []byte("%PDF"), domain.MimeTypeGoogleSheet)

	require.NoError(t, err)
	assert.Equal(t, "987654", fileID)

	assert.Equal(t, "q1-forecast", parts["fileName"].value)
	assert.Equal(t, DefaultFolderPath, parts["folderPath"].value)

	// Exported spreadsheet carries the PDF content type.
	assert.Equal(t, "application/pdf", parts["file"].contentType)
	assert.Equal(t, "%PDF", parts["file"].value)

	assert.Equal(t, "application/json", parts["options"].contentType)
	var options map[string]string
	require.NoError(t, json.Unmarshal([]byte(parts["options"].value), &options))
	assert.Equal(t, "PRIVATE", options["access"])
	assert.Equal(t, "NONE", options["duplicateValidationStrategy"])
	assert.Equal(t, "EXACT_FOLDER", options["duplicateValidationScope"])
}

func TestUploadFile_KeepsOriginalContentType(t *testing.T) {
	var fileContentType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reader, err := r.MultipartReader()
		require.NoError(t, err)
		for {
			p, err := reader.NextPart()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			if p.FormName() == "file" {
				fileContentType = p.Header.Get("Content-Type")
			}
			_, _ = io.Copy(io.Discard, p)
		}
		_, _ = w.Write([]byte(`{"objects": [{"id": "11"}]}`))
	}))

	_, err := client.UploadFile(context.Background(), "photo.png", []byte{0x89}, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "image/png", fileContentType)
}

func TestUploadFile_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "scope missing"}`))
	}))

	_, err := client.UploadFile(context.Background(), "doc", []byte("x"), "text/plain")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, OpUploadFile, statusErr.Op)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "scope missing")
}

func TestUploadFile_EmptyObjects(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"objects": []}`))
	}))

	_, err := client.UploadFile(context.Background(), "doc", []byte("x"), "text/plain")

	assert.Error(t, err)
}
