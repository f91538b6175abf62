package remote

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"testing"
)

func TestDownload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/battery":
			w.Write([]byte("#!/usr/bin/env python3\n"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	t.Run("Successful download", func(t *testing.T) {
		target := path.Join(t.TempDir(), "bin", "battery")
		err := Download(server.URL+"/battery", target)
		if err != nil {
			t.Fatalf("Download() error = %v", err)
		}

		content, err := os.ReadFile(target)
		if err != nil {
			t.Fatalf("error reading downloaded file: %v", err)
		}
		if string(content) != "#!/usr/bin/env python3\n" {
			t.Errorf("downloaded content = %q", content)
		}
	})

	t.Run("Download overwrites existing target", func(t *testing.T) {
		target := path.Join(t.TempDir(), "battery")
		if err := os.WriteFile(target, []byte("stale"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := Download(server.URL+"/battery", target); err != nil {
			t.Fatalf("Download() error = %v", err)
		}

		content, err := os.ReadFile(target)
		if err != nil {
			t.Fatal(err)
		}
		if strings.Contains(string(content), "stale") {
			t.Errorf("target not overwritten: %q", content)
		}
	})

	t.Run("Missing remote file", func(t *testing.T) {
		target := path.Join(t.TempDir(), "battery-alert.py")
		err := Download(server.URL+"/battery-alert.py", target)
		if err == nil {
			t.Fatal("Download() expected an error for missing remote file")
		}
		if !strings.Contains(err.Error(), "404") {
			t.Errorf("Download() error = %v, want status 404 mentioned", err)
		}
		if _, statErr := os.Stat(target); statErr == nil {
			t.Error("target written despite failed download")
		}
	})

	t.Run("Empty URL", func(t *testing.T) {
		if err := Download("", "/tmp/battery"); err == nil {
			t.Error("Download() expected an error for empty URL")
		}
	})

	t.Run("Empty target", func(t *testing.T) {
		if err := Download(server.URL+"/battery", ""); err == nil {
			t.Error("Download() expected an error for empty target")
		}
	})
}
