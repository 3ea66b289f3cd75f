package esearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esutil"
)

// ErrDocumentNotFound is returned when an index has no document for the
// requested identifier.
var ErrDocumentNotFound = errors.New("document not found")

// ESearchClient is the capability surface the sync service and the query
// translator need from the search index.
type ESearchClient interface {
	IndexDocument(ctx context.Context, index, documentID string, doc map[string]any) error
	PartialUpdate(ctx context.Context, index, documentID string, fields map[string]any) error
	DeleteDocument(ctx context.Context, index, documentID string) error
	GetDocument(ctx context.Context, index, documentID string) (map[string]any, error)
	Search(ctx context.Context, index string, expression map[string]any) ([]map[string]any, error)
	BulkIndex(ctx context.Context, index string, docs []Document) error
}

type ESClient struct {
	client *elasticsearch.Client
}

// NewClient wraps an elasticsearch client. The handle is constructed once
// at startup and passed in; nothing here reaches for a global.
func NewClient(client *elasticsearch.Client) ESearchClient {
	return &ESClient{
		client: client,
	}
}

// IndexDocument indexes one document, replacing any previous version.
func (c *ESClient) IndexDocument(ctx context.Context, index, documentID string, doc map[string]any) error {
	response, err := c.client.Index(index, esutil.NewJSONReader(doc),
		c.client.Index.WithContext(ctx),
		c.client.Index.WithDocumentID(documentID),
		c.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.IsError() {
		return fmt.Errorf("indexing document %s: %s", documentID, response.String())
	}
	return nil
}

// PartialUpdate applies the given fields to an existing document.
func (c *ESClient) PartialUpdate(ctx context.Context, index, documentID string, fields map[string]any) error {
	body := map[string]any{"doc": fields}

	response, err := c.client.Update(index, documentID, esutil.NewJSONReader(body),
		c.client.Update.WithContext(ctx),
		c.client.Update.WithRefresh("true"),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return ErrDocumentNotFound
	}
	if response.IsError() {
		return fmt.Errorf("updating document %s: %s", documentID, response.String())
	}
	return nil
}

// DeleteDocument removes a document from the index.
func (c *ESClient) DeleteDocument(ctx context.Context, index, documentID string) error {
	response, err := c.client.Delete(index, documentID,
		c.client.Delete.WithContext(ctx),
		c.client.Delete.WithRefresh("true"),
	)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return ErrDocumentNotFound
	}
	if response.IsError() {
		return fmt.Errorf("deleting document %s: %s", documentID, response.String())
	}
	return nil
}

// GetDocument fetches a document by its identifier.
func (c *ESClient) GetDocument(ctx context.Context, index, documentID string) (map[string]any, error) {
	response, err := c.client.Get(index, documentID,
		c.client.Get.WithContext(ctx),
	)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return nil, ErrDocumentNotFound
	}
	if response.IsError() {
		return nil, fmt.Errorf("getting document %s: %s", documentID, response.String())
	}

	var getResponse GetResponse
	if err = json.NewDecoder(response.Body).Decode(&getResponse); err != nil {
		return nil, err
	}

	doc := getResponse.Source
	if doc == nil {
		doc = map[string]any{}
	}
	doc["id"] = getResponse.ID
	return doc, nil
}

// Search executes a full query expression against one index and returns
// the ranked documents.
func (c *ESClient) Search(ctx context.Context, index string, expression map[string]any) ([]map[string]any, error) {
	response, err := c.client.Search(
		c.client.Search.WithContext(ctx),
		c.client.Search.WithIndex(index),
		c.client.Search.WithBody(esutil.NewJSONReader(expression)),
		c.client.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.IsError() {
		return nil, fmt.Errorf("searching index %s: %s", index, response.String())
	}

	var searchResponse SearchResponse
	if err = json.NewDecoder(response.Body).Decode(&searchResponse); err != nil {
		return nil, err
	}

	var docs []map[string]any
	for _, hit := range searchResponse.Hits.Hits {
		doc := hit.Source
		if doc == nil {
			doc = map[string]any{}
		}
		doc["id"] = hit.ID
		docs = append(docs, doc)
	}
	return docs, nil
}

// BulkIndex indexes every document in one bulk pass with index-or-replace
// semantics per identifier. Used by reconciliation; re-running it on an
// unchanged entity store is a no-op for every document.
func (c *ESClient) BulkIndex(ctx context.Context, index string, docs []Document) error {
	if len(docs) == 0 {
		return nil
	}

	bulkIndexer, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Index:      index,
		Client:     c.client,
		NumWorkers: 5,
	})
	if err != nil {
		return err
	}

	var (
		mutex    sync.Mutex
		failures []string
	)
	for _, doc := range docs {
		// BulkIndexerItem.Body requires an io.ReadSeeker, so the JSON
		// reader is drained into a seekable buffer first.
		body, err := io.ReadAll(esutil.NewJSONReader(doc.Body))
		if err != nil {
			return err
		}
		err = bulkIndexer.Add(
			ctx,
			esutil.BulkIndexerItem{
				Action:     "index",
				DocumentID: doc.ID,
				Body:       bytes.NewReader(body),
				OnFailure: func(ctx context.Context, item esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
					mutex.Lock()
					failures = append(failures, item.DocumentID)
					mutex.Unlock()
				},
			},
		)
		if err != nil {
			return err
		}
	}

	if err = bulkIndexer.Close(ctx); err != nil {
		return err
	}
	if len(failures) > 0 {
		return fmt.Errorf("bulk indexing into %s: %d documents failed", index, len(failures))
	}
	return nil
}
