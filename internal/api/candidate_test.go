package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atsdev/go-ats-search/internal/db"
	mockdb "github.com/atsdev/go-ats-search/internal/db/mock"
	"github.com/atsdev/go-ats-search/internal/esearch"
	mockes "github.com/atsdev/go-ats-search/internal/esearch/mock"
	"github.com/atsdev/go-ats-search/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var errClusterUnavailable = errors.New("cluster unavailable")

func TestCreateCandidateAPI(t *testing.T) {
	candidate := utils.GenerateCandidateDocument()

	requestBody := gin.H{
		"name":   candidate["name"],
		"email":  candidate["email"],
		"mobile": candidate["mobile"],
		"skills": candidate["skills"],
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, client *mockes.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: requestBody,
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				store.EXPECT().
					Insert(gomock.Any(), gomock.Eq("candidates"), gomock.Any()).
					Times(1).
					Return(nil)
				client.EXPECT().
					IndexDocument(gomock.Any(), gomock.Eq("candidates"), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil)
				store.EXPECT().
					AppendSyncEvent(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SyncEvent{ID: 1}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)
				body := requireBodyMatchDocument(t, recorder.Body)
				require.Equal(t, candidate["name"], body["name"])
				require.NotEmpty(t, body["id"])
				require.NotEmpty(t, body["createdAt"])
			},
		},
		{
			name: "Invalid Email",
			body: gin.H{
				"name":   candidate["name"],
				"email":  "not-an-email",
				"mobile": candidate["mobile"],
			},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "Missing Required Field",
			body: gin.H{
				"email": candidate["email"],
			},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "Invalid Gender",
			body: gin.H{
				"name":   candidate["name"],
				"email":  candidate["email"],
				"mobile": candidate["mobile"],
				"gender": "invalid",
			},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "Internal Server Error Insert",
			body: requestBody,
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				store.EXPECT().
					Insert(gomock.Any(), gomock.Eq("candidates"), gomock.Any()).
					Times(1).
					Return(sql.ErrConnDone)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
		{
			name: "Internal Server Error IndexDocument",
			body: requestBody,
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				store.EXPECT().
					Insert(gomock.Any(), gomock.Eq("candidates"), gomock.Any()).
					Times(1).
					Return(nil)
				client.EXPECT().
					IndexDocument(gomock.Any(), gomock.Eq("candidates"), gomock.Any(), gomock.Any()).
					Times(1).
					Return(errClusterUnavailable)
				// the divergence is still recorded before the error surfaces
				store.EXPECT().
					AppendSyncEvent(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SyncEvent{ID: 2}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockes.NewMockESearchClient(ctrl)
			tc.buildStubs(store, client)

			server := newTestServer(t, store, client)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := "/api/v1/candidates"
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestGetCandidateAPI(t *testing.T) {
	candidate := utils.GenerateCandidateDocument()
	candidate["id"] = "cand-1"

	testCases := []struct {
		name          string
		candidateID   string
		buildStubs    func(store *mockdb.MockStore, client *mockes.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "OK",
			candidateID: "cand-1",
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				client.EXPECT().
					GetDocument(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1")).
					Times(1).
					Return(candidate, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				body := requireBodyMatchDocument(t, recorder.Body)
				require.Equal(t, "cand-1", body["id"])
				require.Equal(t, candidate["name"], body["name"])
			},
		},
		{
			name:        "Not Found",
			candidateID: "missing",
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				client.EXPECT().
					GetDocument(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("missing")).
					Times(1).
					Return(nil, esearch.ErrDocumentNotFound)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockes.NewMockESearchClient(ctrl)
			tc.buildStubs(store, client)

			server := newTestServer(t, store, client)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/api/v1/candidates/%s", tc.candidateID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestUpdateCandidateAPI(t *testing.T) {
	testCases := []struct {
		name          string
		candidateID   string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, client *mockes.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "OK",
			candidateID: "cand-1",
			body: gin.H{
				"currentLocation": "Berlin",
				"skills":          []string{"Go", "Python"},
			},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				row := map[string]any{
					"id":     "cand-1",
					"name":   "Ada Lovelace",
					"email":  "ada@x.com",
					"mobile": "+10000000000",
				}
				store.EXPECT().
					SelectByID(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1")).
					Times(1).
					Return(row, nil)
				store.EXPECT().
					Update(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1"), gomock.Any()).
					Times(1).
					Return(nil)
				client.EXPECT().
					PartialUpdate(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1"), gomock.Any()).
					Times(1).
					Return(nil)
				store.EXPECT().
					AppendSyncEvent(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SyncEvent{ID: 3}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				body := requireBodyMatchDocument(t, recorder.Body)
				require.Equal(t, "Berlin", body["currentLocation"])
				require.Equal(t, "Ada Lovelace", body["name"])
			},
		},
		{
			name:        "Not Found",
			candidateID: "missing",
			body:        gin.H{"currentLocation": "Berlin"},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				store.EXPECT().
					SelectByID(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("missing")).
					Times(1).
					Return(nil, sql.ErrNoRows)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:        "Invalid Email",
			candidateID: "cand-1",
			body:        gin.H{"email": "not-an-email"},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockes.NewMockESearchClient(ctrl)
			tc.buildStubs(store, client)

			server := newTestServer(t, store, client)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := fmt.Sprintf("/api/v1/candidates/%s", tc.candidateID)
			request, err := http.NewRequest(http.MethodPatch, url, bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestDeleteCandidateAPI(t *testing.T) {
	testCases := []struct {
		name          string
		candidateID   string
		buildStubs    func(store *mockdb.MockStore, client *mockes.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name:        "OK",
			candidateID: "cand-1",
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				store.EXPECT().
					SelectByID(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1")).
					Times(1).
					Return(map[string]any{"id": "cand-1"}, nil)
				store.EXPECT().
					Delete(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1")).
					Times(1).
					Return(nil)
				client.EXPECT().
					DeleteDocument(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("cand-1")).
					Times(1).
					Return(nil)
				store.EXPECT().
					AppendSyncEvent(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.SyncEvent{ID: 4}, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
			},
		},
		{
			name:        "Not Found",
			candidateID: "missing",
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				store.EXPECT().
					SelectByID(gomock.Any(), gomock.Eq("candidates"), gomock.Eq("missing")).
					Times(1).
					Return(nil, sql.ErrNoRows)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockes.NewMockESearchClient(ctrl)
			tc.buildStubs(store, client)

			server := newTestServer(t, store, client)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/api/v1/candidates/%s", tc.candidateID)
			request, err := http.NewRequest(http.MethodDelete, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestSearchCandidatesAPI(t *testing.T) {
	results := []map[string]any{
		{"id": "cand-1", "name": "Ada Lovelace"},
		{"id": "cand-2", "name": "Grace Hopper"},
	}

	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore, client *mockes.MockESearchClient)
		checkResponse func(recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"query": "python developer",
				"filters": gin.H{
					"skills":          []string{"Python"},
					"currentLocation": "Berlin",
				},
			},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				client.EXPECT().
					Search(gomock.Any(), gomock.Eq("candidates"), gomock.Any()).
					Times(1).
					Return(results, nil)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)
				requireBodyMatchDocuments(t, recorder.Body, 2)
			},
		},
		{
			name: "Invalid Filter Bound",
			body: gin.H{
				"filters": gin.H{
					"experience": gin.H{"gte": "five"},
				},
			},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name: "Query Execution Error",
			body: gin.H{"query": "python"},
			buildStubs: func(store *mockdb.MockStore, client *mockes.MockESearchClient) {
				client.EXPECT().
					Search(gomock.Any(), gomock.Eq("candidates"), gomock.Any()).
					Times(1).
					Return(nil, errClusterUnavailable)
			},
			checkResponse: func(recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			client := mockes.NewMockESearchClient(ctrl)
			tc.buildStubs(store, client)

			server := newTestServer(t, store, client)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			url := "/api/v1/candidates/search"
			request, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(recorder)
		})
	}
}

func TestListCandidatesAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	client := mockes.NewMockESearchClient(ctrl)

	results := []map[string]any{{"id": "cand-1"}, {"id": "cand-2"}}
	client.EXPECT().
		Search(gomock.Any(), gomock.Eq("candidates"), gomock.Any()).
		Times(1).
		Return(results, nil)

	server := newTestServer(t, store, client)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/api/v1/candidates", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	requireBodyMatchDocuments(t, recorder.Body, 2)
}

func requireBodyMatchDocument(t *testing.T, body *bytes.Buffer) map[string]any {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var doc map[string]any
	err = json.Unmarshal(data, &doc)
	require.NoError(t, err)
	return doc
}

func requireBodyMatchDocuments(t *testing.T, body *bytes.Buffer, length int) []map[string]any {
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var docs []map[string]any
	err = json.Unmarshal(data, &docs)
	require.NoError(t, err)
	require.Len(t, docs, length)
	return docs
}
