// Package books searches the Google Books volumes API for career-relevant
// reading material. Results are cached per final query string; the catalog
// changes slowly and the front end re-issues identical searches on every
// page visit.
package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"careercompass/internal/career"
)

const defaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

// Book is one search hit, mapped to the shape the front end consumes.
type Book struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	CoverURL    string   `json:"coverUrl,omitempty"`
	Description string   `json:"description,omitempty"`
	InfoLink    string   `json:"infoLink"`
}

// Search terms per career path. Quoted phrases and OR-groups give better
// results than the long catalog names.
var categorySearchTerms = map[career.PathName]string{
	career.PathAI:            `"Artificial Intelligence" OR "Data Science" OR "Machine Learning"`,
	career.PathCybersecurity: `Cybersecurity OR "Information Security" OR "Ethical Hacking"`,
	career.PathNetworking:    `"Computer Networking" OR "Network Administration" OR "Cisco"`,
	career.PathWebDev:        `"Web Development" OR "Full-Stack Development" OR JavaScript OR React`,
	career.PathCloud:         `"Cloud Computing" OR AWS OR Azure OR "Google Cloud"`,
	career.PathSoftwareEng:   `"Software Engineering" OR "Software Design" OR "Clean Code"`,
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      *lru.Cache[string, []Book]
}

func NewClient() *Client {
	cache, _ := lru.New[string, []Book](256)
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		cache:      cache,
	}
}

// NewClientWithBase is for tests pointing at a local server.
func NewClientWithBase(baseURL string, httpClient *http.Client) *Client {
	c := NewClient()
	c.baseURL = strings.TrimRight(baseURL, "/")
	if httpClient != nil {
		c.httpClient = httpClient
	}
	return c
}

// Search runs a volumes query scoped to a career category. category "All"
// (or empty) searches the raw query only. An empty final query returns an
// empty list without a network call.
func (c *Client) Search(ctx context.Context, query, category string) ([]Book, error) {
	finalQuery := buildQuery(query, category)
	if strings.TrimSpace(finalQuery) == "" {
		return []Book{}, nil
	}
	if cached, ok := c.cache.Get(finalQuery); ok {
		return cached, nil
	}

	endpoint := fmt.Sprintf("%s?q=%s&maxResults=40", c.baseURL, url.QueryEscape(finalQuery))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("books: search: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("books: search: unexpected status %d", resp.StatusCode)
	}

	var payload volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("books: decode: %w", err)
	}

	out := make([]Book, 0, len(payload.Items))
	for _, item := range payload.Items {
		out = append(out, toBook(item))
	}
	c.cache.Add(finalQuery, out)
	return out, nil
}

func buildQuery(query, category string) string {
	query = strings.TrimSpace(query)
	if category == "" || category == "All" {
		return query
	}
	term, ok := categorySearchTerms[career.PathName(category)]
	if !ok {
		term = fmt.Sprintf("%q", category)
	}
	// The default landing query just browses the category.
	if query == "" || strings.EqualFold(query, "computer science") {
		return term
	}
	return term + " AND " + query
}

type volumesResponse struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string `json:"id"`
	VolumeInfo struct {
		Title       string   `json:"title"`
		Authors     []string `json:"authors"`
		Description string   `json:"description"`
		InfoLink    string   `json:"infoLink"`
		ImageLinks  struct {
			Thumbnail string `json:"thumbnail"`
		} `json:"imageLinks"`
	} `json:"volumeInfo"`
}

func toBook(item volumeItem) Book {
	authors := item.VolumeInfo.Authors
	if len(authors) == 0 {
		authors = []string{"Unknown Author"}
	}
	return Book{
		ID:          item.ID,
		Title:       item.VolumeInfo.Title,
		Authors:     authors,
		CoverURL:    strings.Replace(item.VolumeInfo.ImageLinks.Thumbnail, "http://", "https://", 1),
		Description: item.VolumeInfo.Description,
		InfoLink:    item.VolumeInfo.InfoLink,
	}
}
