package httptesting

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type RoundTripFunc func(req *http.Request) (*http.Response, error)

// MockTransport dispatches requests to handlers keyed by method and url path. Public
// endpoints are GET and private endpoints are POST, so only those two are supported.
type MockTransport struct {
	getHandlers  map[string]RoundTripFunc
	postHandlers map[string]RoundTripFunc
}

func (transport *MockTransport) GET(path string, f RoundTripFunc) {
	if transport.getHandlers == nil {
		transport.getHandlers = make(map[string]RoundTripFunc)
	}

	transport.getHandlers[path] = f
}

func (transport *MockTransport) POST(path string, f RoundTripFunc) {
	if transport.postHandlers == nil {
		transport.postHandlers = make(map[string]RoundTripFunc)
	}

	transport.postHandlers[path] = f
}

func (transport *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var handlers map[string]RoundTripFunc

	switch strings.ToUpper(req.Method) {
	case http.MethodGet:
		handlers = transport.getHandlers
	case http.MethodPost:
		handlers = transport.postHandlers
	default:
		return nil, errors.Errorf("unsupported mock transport request method: %s", req.Method)
	}

	f, ok := handlers[req.URL.Path]
	if !ok {
		return nil, errors.Errorf("roundtrip mock to %s %s is not defined", req.Method, req.URL.Path)
	}

	return f(req)
}

// RecorderEntry is one recorded request and response pair.
type RecorderEntry struct {
	Timestamp time.Time       `json:"timestamp"`
	Request   *RequestRecord  `json:"request"`
	Response  *ResponseRecord `json:"response"`
	Error     string          `json:"error,omitempty"`
}

type RequestRecord struct {
	Method string      `json:"method"`
	URL    string      `json:"url"`
	Header http.Header `json:"header"`
	Body   string      `json:"body,omitempty"`
}

type ResponseRecord struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"header"`
	Body       string      `json:"body,omitempty"`
}

// Recorder records the exchanges of a real transport into a file, which can be played
// back later through a MockTransport.
type Recorder struct {
	entries   []RecorderEntry
	transport http.RoundTripper
}

func NewRecorder(transport http.RoundTripper) *Recorder {
	return &Recorder{
		transport: transport,
	}
}

var credentialHeaders = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^api[-_]key$`),
	regexp.MustCompile(`(?i)^api[-_]sign$`),
	regexp.MustCompile(`(?i)^authorization$`),
	regexp.MustCompile(`(?i)^cookie$`),
}

// filterCredentials removes the api key and the signature from the recorded headers.
func filterCredentials(header http.Header) {
	for key := range header {
		for _, re := range credentialHeaders {
			if re.MatchString(key) {
				header.Del(key)
				break
			}
		}
	}
}

func (r *Recorder) RecordEntry(req *http.Request, resp *http.Response, err error) {
	entry := RecorderEntry{
		Timestamp: time.Now(),
		Request: &RequestRecord{
			Method: req.Method,
			URL:    req.URL.String(),
			Header: req.Header.Clone(),
		},
	}
	filterCredentials(entry.Request.Header)

	// the transport has consumed the body already
	if req.GetBody != nil {
		if body, bodyErr := req.GetBody(); bodyErr == nil {
			data, _ := io.ReadAll(body)
			entry.Request.Body = string(data)
		}
	}

	if resp != nil {
		entry.Response = &ResponseRecord{
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
			Header:     resp.Header.Clone(),
		}
		if resp.Body != nil {
			bodyBytes, _ := io.ReadAll(resp.Body)
			entry.Response.Body = string(bodyBytes)
			resp.Body = io.NopCloser(strings.NewReader(entry.Response.Body))
		}
	}

	if err != nil {
		entry.Error = err.Error()
	}

	r.entries = append(r.entries, entry)
}

func (r *Recorder) Entries() []RecorderEntry {
	return r.entries
}

// Save saves the recorded entries to a JSON file.
func (r *Recorder) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(r.entries)
}

// Load loads recorded entries from a JSON file.
func (r *Recorder) Load(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var entries []RecorderEntry
	if err := json.NewDecoder(file).Decode(&entries); err != nil {
		return errors.Wrapf(err, "unable to decode recording %s", filename)
	}

	r.entries = entries
	return nil
}

func BuildResponseFromRecord(respRec *ResponseRecord) *http.Response {
	return &http.Response{
		Status:     respRec.Status,
		StatusCode: respRec.StatusCode,
		Header:     respRec.Header.Clone(),
		Body:       io.NopCloser(strings.NewReader(respRec.Body)),
	}
}

// LoadFromRecorder registers a handler per recorded method and path, answering with the
// recorded response. A later entry for the same path replaces the earlier one.
func (transport *MockTransport) LoadFromRecorder(recorder *Recorder) error {
	for _, entry := range recorder.entries {
		if entry.Request == nil || entry.Response == nil {
			continue
		}

		u, err := url.Parse(entry.Request.URL)
		if err != nil {
			return err
		}

		respRec := entry.Response
		handler := func(_ *http.Request) (*http.Response, error) {
			return BuildResponseFromRecord(respRec), nil
		}

		switch strings.ToUpper(entry.Request.Method) {
		case http.MethodGet:
			transport.GET(u.Path, handler)
		case http.MethodPost:
			transport.POST(u.Path, handler)
		default:
			return errors.Errorf("unsupported recorded request method: %s", entry.Request.Method)
		}
	}
	return nil
}

// RoundTrip records the exchange made through the underlying transport.
func (r *Recorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.transport.RoundTrip(req)
	r.RecordEntry(req, resp, err)
	return resp, err
}
