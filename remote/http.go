package remote

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"

	"github.com/tinwind/deckprov/internal"
)

const (
	userAgentKey = "user-agent"
	userAgent    = "tinwind/deckprov"
)

var (
	okStatuses = []int{http.StatusOK}
)

func readResponseBody(url string) (io.ReadCloser, error) {
	cl := http.Client{}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(userAgentKey, userAgent)

	resp, err := cl.Do(req)
	if err != nil {
		return nil, err
	}

	statusCode := resp.StatusCode
	if !internal.Contains(okStatuses, statusCode) {
		resp.Body.Close()
		return nil, fmt.Errorf("error reading response, got status %d from URL %s", statusCode, url)
	}

	return resp.Body, nil
}

// Download fetches url into target, overwriting the target unconditionally
// and creating its directory if needed.
func Download(url, target string) error {
	if url == "" {
		return fmt.Errorf("download URL is empty")
	}
	if target == "" {
		return fmt.Errorf("download target is empty")
	}

	body, err := readResponseBody(url)
	if err != nil {
		return err
	}
	defer body.Close()

	dir, _ := path.Split(target)
	if err = internal.EnsureDirExists(dir); err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, os.FileMode(0o644))
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, body)
	if err != nil {
		return err
	}

	return nil
}
