package mux

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseRowsOption(t *testing.T) {
	req := func(queryString string) *http.Request {
		req, _ := http.NewRequest(http.MethodGet, "https://example.domain/"+queryString, nil)
		return req
	}

	rows, err := parseRowsOption(req(""), 50)
	assert.NoError(t, err)
	assert.Equal(t, 50, rows)

	rows, err = parseRowsOption(req("?rows=25"), 50)
	assert.NoError(t, err)
	assert.Equal(t, 25, rows)

	rows, err = parseRowsOption(req("?rows=0"), 50)
	assert.EqualError(t, err, "rows must be greater than zero")
	assert.Equal(t, 0, rows)

	rows, err = parseRowsOption(req(fmt.Sprintf("?rows=%d", 51)), 50)
	assert.EqualError(t, err, "rows cannot be greater than 50")
	assert.Equal(t, 0, rows)

	_, err = parseRowsOption(req("?rows=ten"), 50)
	assert.Error(t, err)
}

func Test_writeJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, fmt.Errorf("bad rows"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"bad rows","statusCode":400}`, w.Body.String())

	w = httptest.NewRecorder()
	writeJSONError(w, http.StatusInternalServerError, fmt.Errorf("secret"))
	assert.JSONEq(t, `{"message":"Internal Server Error","statusCode":500}`, w.Body.String())
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Error(err)
		return
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := ioutil.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
		}
	}
}
