package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmbeddingsClient_EmbedQuery(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		serverResp func(w http.ResponseWriter, r *http.Request)
		want       []float64
		wantErr    bool
	}{
		{
			name: "successful embedding",
			text: "Cumhuriyetin nitelikleri nelerdir?",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				if !strings.Contains(r.URL.Path, ":embedContent") {
					t.Errorf("unexpected path %s", r.URL.Path)
				}

				var req EmbedRequest
				if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
					t.Errorf("failed to decode request: %v", err)
				}
				if req.TaskType != "retrieval_query" {
					t.Errorf("task_type = %s, want retrieval_query", req.TaskType)
				}
				if req.Content == "" {
					t.Error("empty content in request")
				}

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"embedding":{"values":[0.1,0.2,0.3]}}`))
			},
			want: []float64{0.1, 0.2, 0.3},
		},
		{
			name: "server error",
			text: "soru",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
		{
			name: "empty embedding",
			text: "soru",
			serverResp: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"embedding":{"values":[]}}`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(tt.serverResp))
			defer server.Close()

			client := NewEmbeddingsClient(server.URL, "test-key", "text-embedding-004")
			got, err := client.EmbedQuery(context.Background(), tt.text)

			if tt.wantErr {
				if err == nil {
					t.Fatal("EmbedQuery() expected error, got nil")
				}
				if strings.Contains(err.Error(), "test-key") {
					t.Errorf("EmbedQuery() error leaks credential: %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("EmbedQuery() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("EmbedQuery() returned %d values, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("EmbedQuery()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEmbeddingsClient_EmptyInput(t *testing.T) {
	client := NewEmbeddingsClient("http://localhost", "key", "text-embedding-004")
	if _, err := client.EmbedQuery(context.Background(), ""); err == nil {
		t.Error("EmbedQuery() with empty text should fail")
	}
}
