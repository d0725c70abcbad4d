package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Blackdeer1524/joaat/src/joaat"
)

func setupServer(t *testing.T, finder Finder) http.Handler {
	t.Helper()

	log := zap.NewNop().Sugar()
	h := NewAPIHandler(finder, 6, log)

	return NewServer("localhost", 0, h, log).Router()
}

func get(t *testing.T, router http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	return rec
}

func TestHash(t *testing.T) {
	router := setupServer(t, &MockFinder{})

	rec := get(t, router, "/hash?input=hello")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	var resp hashResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "hello", resp.Input)
	assert.Equal(t, "0xc8fd181b", resp.Hash)
	assert.Equal(t, uint32(0xc8fd181b), resp.Value)
}

func TestRequestIDPropagated(t *testing.T) {
	router := setupServer(t, &MockFinder{})

	req := httptest.NewRequest(http.MethodGet, "/hash?input=a", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}

func TestPreimages(t *testing.T) {
	finder := &MockFinder{}
	finder.On("Alphabet").Return(joaat.MustAlphabet("abcdefghijklmnopqrstuvwxyz"))
	finder.On("FindPreimages", uint32(0xb779a091), 5).Return([]string{"adder"}).Once()

	router := setupServer(t, finder)

	rec := get(t, router, "/preimages?target=0xb779a091&length=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp preimagesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"adder"}, resp.Preimages)
	assert.Equal(t, "0xb779a091", resp.Target)
	assert.Equal(t, 5, resp.Length)

	finder.AssertExpectations(t)
}

func TestPreimages_EmptyResult(t *testing.T) {
	finder := &MockFinder{}
	finder.On("Alphabet").Return(joaat.MustAlphabet("ab"))
	finder.On("FindPreimages", mock.Anything, 3).Return(nil)

	rec := get(t, setupServer(t, finder), "/preimages?target=12&length=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp preimagesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotNil(t, resp.Preimages)
	assert.Empty(t, resp.Preimages)
}

func TestPreimages_CustomAlphabet(t *testing.T) {
	lower := joaat.MustAlphabet("abcdefghijklmnopqrstuvwxyz")

	finder := &MockFinder{}
	finder.On("Alphabet").Return(joaat.MustAlphabet("01"))
	finder.On("FindWith", uint32(0xb779a091), 5, lower).Return([]string{"adder"}).Once()

	rec := get(t, setupServer(t, finder), "/preimages?target=0xb779a091&length=5&alphabet=lower")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp preimagesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"adder"}, resp.Preimages)
	assert.Equal(t, lower.String(), resp.Alphabet)

	finder.AssertExpectations(t)
	finder.AssertNotCalled(t, "FindPreimages", mock.Anything, mock.Anything)
}

func TestPreimages_CustomAlphabetSharesSearcher(t *testing.T) {
	searcher, err := joaat.NewSearcher(joaat.MustAlphabet("01"), 1, nil)
	require.NoError(t, err)
	defer searcher.Close()

	router := setupServer(t, searcher)

	rec := get(t, router, "/preimages?target=0x174aad6a&length=5&alphabet=lower")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp preimagesResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"qrntf", "uksfj", "qvgjj"}, resp.Preimages)
}

func TestPreimages_BadRequests(t *testing.T) {
	finder := &MockFinder{}
	finder.On("Alphabet").Return(joaat.MustAlphabet("ab"))
	router := setupServer(t, finder)

	for _, url := range []string{
		"/preimages?target=zzz&length=3",
		"/preimages?target=1&length=x",
		"/preimages?target=1&length=0",
		"/preimages?target=1&length=7",
		"/preimages?target=1&length=2&alphabet=aa",
	} {
		rec := get(t, router, url)
		assert.Equal(t, http.StatusBadRequest, rec.Code, url)
	}

	finder.AssertNotCalled(t, "FindPreimages", mock.Anything, mock.Anything)
	finder.AssertNotCalled(t, "FindWith", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheck(t *testing.T) {
	router := setupServer(t, &MockFinder{})

	rec := get(t, router, "/check?candidate=adder&target=0xb779a091&alphabet=upper")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp checkResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Preimage)
	require.NotNil(t, resp.InAlphabet)
	assert.False(t, *resp.InAlphabet)

	rec = get(t, router, "/check?candidate=adder&target=1")
	require.Equal(t, http.StatusOK, rec.Code)

	resp = checkResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Preimage)
	assert.Nil(t, resp.InAlphabet)

	rec = get(t, router, "/check?candidate=adder")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlphabets(t *testing.T) {
	rec := get(t, setupServer(t, &MockFinder{}), "/alphabets")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "0123456789", resp["digits"])
	assert.Len(t, resp["alphanumeric"], 62)
}

func TestMethodNotAllowed(t *testing.T) {
	router := setupServer(t, &MockFinder{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/hash", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
