package sogni

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/app/models"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/errs"
	"github.com/gjl2454/sogni-image-restore-superapp-sub001/internal/utils/logger"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	m.Run()
}

func TestCreateProject_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/projects", r.URL.Path)
		assert.Equal(t, "test-app", r.Header.Get("X-App-ID"))

		var params CreateProjectParams
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&params))
		assert.Equal(t, 4, params.NumberOfMedia)

		json.NewEncoder(w).Encode(map[string]string{"id": "p1"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-app", WithPollInterval(time.Hour))
	defer client.Close()

	projectID, err := client.CreateProject(context.Background(), CreateProjectParams{NumberOfMedia: 4})

	assert.NoError(t, err)
	assert.Equal(t, "p1", projectID)
}

func TestCreateProject_InsufficientCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		json.NewEncoder(w).Encode(map[string]any{"code": 4024, "message": "debit failed"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-app")
	defer client.Close()

	_, err := client.CreateProject(context.Background(), CreateProjectParams{NumberOfMedia: 2})

	assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
}

func TestCreateProject_NestedErrorShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 400, "message": "bad model id"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-app")
	defer client.Close()

	_, err := client.CreateProject(context.Background(), CreateProjectParams{})

	assert.ErrorIs(t, err, errs.ErrSubmissionFailed)
	assert.Contains(t, err.Error(), "bad model id")
}

func TestGetDownloadURL(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        any
		expectedURL string
		expectedErr error
	}{
		{
			name:        "success",
			status:      http.StatusOK,
			body:        map[string]string{"url": "https://cdn/signed"},
			expectedURL: "https://cdn/signed",
		},
		{
			name:        "notFoundMeansDeleted",
			status:      http.StatusNotFound,
			body:        map[string]string{"message": "no such job"},
			expectedErr: errs.ErrMediaDeleted,
		},
		{
			name:        "deletedIndicatorInBody",
			status:      http.StatusGone,
			body:        map[string]string{"message": "project was deleted"},
			expectedErr: errs.ErrMediaDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/projects/p1/jobs/j1/download", r.URL.Path)
				assert.Equal(t, "image", r.URL.Query().Get("type"))
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			}))
			defer server.Close()

			client := NewClient(server.URL, "test-app")
			defer client.Close()

			url, err := client.GetDownloadURL(context.Background(), "p1", "j1", models.MediaImage)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedURL, url)
		})
	}
}

func TestPoller_EmitsJobEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/projects":
			json.NewEncoder(w).Encode(map[string]string{"id": "p1"})
		case "/v1/projects/p1":
			idx0, idx1 := 0, 1
			progress := 0.5
			json.NewEncoder(w).Encode(projectStatus{
				ID:     "p1",
				Status: projectStatusCompleted,
				Jobs: []jobStatus{
					{ID: "j0", Index: &idx0, Status: jobStatusCompleted, ResultURL: "u0"},
					{ID: "j1", Index: &idx1, Status: jobStatusProcessing, Progress: &progress},
				},
			})
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-app", WithPollInterval(10*time.Millisecond))
	defer client.Close()

	events, unsubscribe := client.SubscribeProject("p1")
	defer unsubscribe()

	_, err := client.CreateProject(context.Background(), CreateProjectParams{NumberOfMedia: 2})
	assert.NoError(t, err)

	var got []models.RawEvent
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case ev := <-events:
			got = append(got, ev)
		case <-deadline:
			t.Fatalf("timed out waiting for events, got %d", len(got))
		}
	}

	assert.Equal(t, "completed", got[0].Type)
	assert.Equal(t, "u0", got[0].ResultURL)
	assert.Equal(t, "progress", got[1].Type)
	assert.Equal(t, 0.5, *got[1].Progress)
}

func TestSubscribe_UnsubscribeIsIdempotent(t *testing.T) {
	client := NewClient("http://unused", "test-app")
	defer client.Close()

	_, cancelGlobal := client.SubscribeGlobal()
	_, cancelProject := client.SubscribeProject("p1")
	assert.Equal(t, 2, client.SubscriberCount())

	cancelGlobal()
	cancelGlobal()
	assert.Equal(t, 1, client.SubscriberCount())

	cancelProject()
	assert.Equal(t, 0, client.SubscriberCount())
}
