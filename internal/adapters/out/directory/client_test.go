package directory_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parceltrack/internal/adapters/out/directory"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

func TestOrderDirectoryClient_VerifyOrderExists(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("should accept a known order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/orders/"+orderID.String(), r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := directory.NewOrderDirectoryClient(server.URL)
		err := client.VerifyOrderExists(t.Context(), orderID)

		require.NoError(t, err)
	})

	t.Run("should map 404 to object not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := directory.NewOrderDirectoryClient(server.URL)
		err := client.VerifyOrderExists(t.Context(), orderID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should surface server failures", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := directory.NewOrderDirectoryClient(server.URL)
		err := client.VerifyOrderExists(t.Context(), orderID)

		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail when the directory is unreachable", func(t *testing.T) {
		client := directory.NewOrderDirectoryClient("http://127.0.0.1:1")
		err := client.VerifyOrderExists(t.Context(), orderID)

		require.Error(t, err)
	})
}

func TestCourierDirectoryClient_VerifyCourierExists(t *testing.T) {
	courierID := kernel.NewUUID()

	t.Run("should accept a known courier", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/couriers/"+courierID.String(), r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := directory.NewCourierDirectoryClient(server.URL)
		err := client.VerifyCourierExists(t.Context(), courierID)

		require.NoError(t, err)
	})

	t.Run("should map 404 to object not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := directory.NewCourierDirectoryClient(server.URL)
		err := client.VerifyCourierExists(t.Context(), courierID)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
