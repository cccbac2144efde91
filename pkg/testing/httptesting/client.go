package httptesting

import (
	"net/http"
)

// EchoSave answers every request with the same content. The last request is stored in
// saveTo so tests can inspect the headers and the body that were actually sent.
type EchoSave struct {
	saveTo  **http.Request
	content string
	err     error
}

func (st *EchoSave) RoundTrip(req *http.Request) (*http.Response, error) {
	if st.saveTo != nil {
		*st.saveTo = req
	}

	if st.err != nil {
		return nil, st.err
	}

	resp := BuildResponseString(http.StatusOK, st.content)
	return SetHeader(resp, "Content-Type", "application/json"), nil
}

func HttpClientWithContent(content string) *http.Client {
	return &http.Client{Transport: &EchoSave{content: content}}
}

func HttpClientWithError(err error) *http.Client {
	return &http.Client{Transport: &EchoSave{err: err}}
}

// "Saver" refers to saving the *http.Request in a local variable provided by the caller.
func HttpClientSaver(saved **http.Request, content string) *http.Client {
	return &http.Client{Transport: &EchoSave{saveTo: saved, content: content}}
}
