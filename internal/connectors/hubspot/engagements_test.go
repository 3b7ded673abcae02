package hubspot

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEngagement_RequestShape(t *testing.T) {
	var gotBody engagementRequest
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, engagementsPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"engagement": {"id": 555}}`))
	}))

	engagementID, err := client.CreateEngagement(context.Background(), "987654", "101", "File uploaded from Google Drive: q1-forecast")

	require.NoError(t, err)
	assert.Equal(t, "555", engagementID)

	assert.True(t, gotBody.Engagement.Active)
	assert.Equal(t, "NOTE", gotBody.Engagement.Type)
	// Fixed test clock: 2025-03-10T09:00:00Z in epoch milliseconds.
	assert.Equal(t, int64(1741597200000), gotBody.Engagement.Timestamp)
	assert.Equal(t, []string{"101"}, gotBody.Associations.ContactIDs)
	require.Len(t, gotBody.Attachments, 1)
	assert.Equal(t, "987654", gotBody.Attachments[0].ID)
	assert.Equal(t, "File uploaded from Google Drive: q1-forecast", gotBody.Metadata.Body)
}

func TestCreateEngagement_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "invalid contact"}`))
	}))

	_, err := client.CreateEngagement(context.Background(), "1", "bad", "note")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, OpCreateEngagement, statusErr.Op)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestAttachFileToContact_ComposesUploadAndEngagement(t *testing.T) {
	var noteBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fileUploadPath:
			_, _ = w.Write([]byte(`{"objects": [{"id": "987"}]}`))
		case engagementsPath:
			var req engagementRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			noteBody = req.Metadata.Body
			assert.Equal(t, "987", req.Attachments[0].ID)
			_, _ = w.Write([]byte(`{"engagement": {"id": "1"}}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	err := client.AttachFileToContact(context.Background(), "plan.docx", []byte("bytes"), "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "101")

	require.NoError(t, err)
	assert.Equal(t, "File uploaded from Google Drive: plan.docx", noteBody)
}

func TestAttachFileToContact_UploadFailureStopsEngagement(t *testing.T) {
	engagementCalled := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fileUploadPath:
			w.WriteHeader(http.StatusInternalServerError)
		case engagementsPath:
			engagementCalled = true
		}
	}))

	err := client.AttachFileToContact(context.Background(), "plan", []byte("x"), "text/plain", "101")

	require.Error(t, err)
	assert.False(t, engagementCalled)
}

func TestAttachFileToContact_EngagementFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case fileUploadPath:
			_, _ = w.Write([]byte(`{"objects": [{"id": "987"}]}`))
		case engagementsPath:
			w.WriteHeader(http.StatusBadGateway)
		}
	}))

	err := client.AttachFileToContact(context.Background(), "plan", []byte("x"), "text/plain", "101")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, OpCreateEngagement, statusErr.Op)
}
