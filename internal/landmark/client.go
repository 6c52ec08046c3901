package landmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// defaultTimeout bounds a single detection round trip.
const defaultTimeout = 30 * time.Second

// MeshClient is a Detector backed by an HTTP face-mesh service (a MediaPipe
// style sidecar). The frame is sent as a JPEG body and the service responds
// with normalized landmark sets, one per detected face.
type MeshClient struct {
	baseURL  *url.URL
	client   *http.Client
	maxFaces int
	jpegQual int
}

// meshResponse is the detector service wire format.
type meshResponse struct {
	Faces []struct {
		Landmarks []Point `json:"landmarks"`
	} `json:"faces"`
}

// NewMeshClient creates a detector client for the given base URL
// (e.g. http://localhost:9400). maxFaces caps the number of faces the
// service is asked to resolve; 0 means the service default.
func NewMeshClient(baseURL string, maxFaces int) (*MeshClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing detector URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("detector URL %q must include scheme and host", baseURL)
	}
	return &MeshClient{
		baseURL:  parsed,
		client:   &http.Client{Timeout: defaultTimeout},
		maxFaces: maxFaces,
		jpegQual: 90,
	}, nil
}

// Detect implements Detector. It encodes the frame as JPEG, posts it to the
// service and decodes the returned landmark sets.
func (c *MeshClient) Detect(ctx context.Context, frame image.Image) ([]Set, error) {
	var body bytes.Buffer
	if err := jpeg.Encode(&body, frame, &jpeg.Options{Quality: c.jpegQual}); err != nil {
		return nil, fmt.Errorf("encoding frame for detection: %w", err)
	}

	endpoint := c.baseURL.JoinPath("v1", "face-mesh")
	if c.maxFaces > 0 {
		q := endpoint.Query()
		q.Set("max_faces", strconv.Itoa(c.maxFaces))
		endpoint.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return nil, fmt.Errorf("creating detection request: %w", err)
	}
	req.Header.Set("Content-Type", "image/jpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling detector: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detector returned %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var parsed meshResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding detector response: %w", err)
	}

	sets := make([]Set, 0, len(parsed.Faces))
	for _, face := range parsed.Faces {
		sets = append(sets, Set(face.Landmarks))
	}
	return sets, nil
}

// readErrorBody reads the response body for error messages.
// Returns a placeholder if reading fails (we're already in an error path).
func readErrorBody(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil {
		return "(could not read error body)"
	}
	return string(body)
}
