package mediakit

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-history-api/config"
	"asset-history-api/internal/domain/asset"
)

func testCredential() *asset.UploadCredential {
	return &asset.UploadCredential{
		Token:     "tok-1",
		Signature: "sig-1",
		ExpiresAt: 1900000000,
	}
}

func newTestUploader(endpoint string) *Uploader {
	return NewUploader(config.MediaKit{
		UploadEndpoint: endpoint,
		APIEndpoint:    endpoint,
		URLEndpoint:    "https://media.example.com/acme",
		PublicKey:      "pub_test",
		PrivateKey:     "priv_test",
	}, zap.NewNop())
}

func uploadReq(body []byte) UploadRequest {
	return UploadRequest{
		OwnerRef:    "owner-1",
		Slot:        asset.SlotProfile,
		FileName:    "Ava Tar.PNG",
		ContentType: "image/png",
		Body:        bytes.NewReader(body),
		SizeBytes:   int64(len(body)),
		Credential:  testCredential(),
	}
}

func TestUploader_Upload_Success(t *testing.T) {
	var gotForm map[string]string
	var gotFile []byte

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotForm = map[string]string{}
		for k, v := range r.MultipartForm.Value {
			gotForm[k] = v[0]
		}
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(f)
		gotFile = buf.Bytes()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"fileId": "f-123",
			"name": "pic.png",
			"url": "https://media.example.com/acme/profiles/owner-1/pic.png",
			"thumbnailUrl": "https://media.example.com/acme/tr:n-media_thumbnail/profiles/owner-1/pic.png",
			"size": 11,
			"fileType": "image"
		}`))
	}))
	defer srv.Close()

	u := newTestUploader(srv.URL)

	var progress []int
	info, err := u.Upload(context.Background(), uploadReq([]byte("hello bytes")), func(pct int) {
		progress = append(progress, pct)
	})
	require.NoError(t, err)

	assert.Equal(t, "f-123", info.RemoteRef)
	assert.Equal(t, "https://media.example.com/acme/profiles/owner-1/pic.png", info.URL)
	assert.Equal(t, uint64(11), info.SizeBytes)
	assert.Equal(t, "image/png", info.ContentType)

	// signed credential fields travel with the form
	assert.Equal(t, "sig-1", gotForm["signature"])
	assert.Equal(t, "tok-1", gotForm["token"])
	assert.Equal(t, "1900000000", gotForm["expire"])
	assert.Equal(t, "pub_test", gotForm["publicKey"])
	assert.Equal(t, "profiles/owner-1", gotForm["folder"])
	assert.Equal(t, "owner-1,profile,asset-history", gotForm["tags"])
	// generated name stays collision resistant but readable
	assert.Contains(t, gotForm["fileName"], "ava-tar.png")
	assert.Equal(t, []byte("hello bytes"), gotFile)

	// progress is monotonic and finishes at 100, strictly before return
	require.NotEmpty(t, progress)
	for i := 1; i < len(progress); i++ {
		assert.GreaterOrEqual(t, progress[i], progress[i-1])
	}
	assert.Equal(t, 100, progress[len(progress)-1])
}

func TestUploader_Upload_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "signature expired"}`))
	}))
	defer srv.Close()

	u := newTestUploader(srv.URL)

	info, err := u.Upload(context.Background(), uploadReq([]byte("x")), nil)
	require.ErrorIs(t, err, asset.ErrTransferFailed)
	assert.Contains(t, err.Error(), "signature expired")
	assert.Nil(t, info)
}

func TestUploader_Upload_BadResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "<html>gateway</html>"},
		{"missing fields", `{"name": "pic.png"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			u := newTestUploader(srv.URL)

			_, err := u.Upload(context.Background(), uploadReq([]byte("x")), nil)
			require.ErrorIs(t, err, asset.ErrBadResponse)
		})
	}
}

func TestUploader_Upload_Cancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("cancelled upload must not reach the remote store")
	}))
	defer srv.Close()

	u := newTestUploader(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var progressCalls int
	info, err := u.Upload(ctx, uploadReq([]byte("x")), func(int) { progressCalls++ })
	require.ErrorIs(t, err, asset.ErrCancelled)
	assert.Nil(t, info)
	assert.Zero(t, progressCalls)
}

func TestUploader_Upload_MissingCredentials(t *testing.T) {
	u := NewUploader(config.MediaKit{}, zap.NewNop())

	_, err := u.Upload(context.Background(), uploadReq([]byte("x")), nil)
	require.ErrorIs(t, err, asset.ErrMissingCredentials)
}

func TestUploader_DeleteFile(t *testing.T) {
	var gotPath, gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	u := newTestUploader(srv.URL)

	require.NoError(t, u.DeleteFile(context.Background(), "f-123"))
	assert.Equal(t, "/files/f-123", gotPath)
	assert.Equal(t, "priv_test", gotUser)
}

func TestUploader_DeleteFile_AlreadyGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	u := newTestUploader(srv.URL)

	require.NoError(t, u.DeleteFile(context.Background(), "f-gone"))
}

func TestUploader_IsConfigured(t *testing.T) {
	assert.True(t, newTestUploader("https://upload.example.com").IsConfigured())
	assert.False(t, NewUploader(config.MediaKit{PublicKey: "pub"}, zap.NewNop()).IsConfigured())
}
